package server

// Server объединяет HTTP-серверы отдельных сущностей.
type Server struct {
	DealServer
	CatalogServer
}

func NewServer(
	dealServer DealServer,
	catalogServer CatalogServer,
) Server {
	return Server{
		DealServer:    dealServer,
		CatalogServer: catalogServer,
	}
}
