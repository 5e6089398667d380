package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"deal_service/internal/domain/service/catalog"
	service "deal_service/internal/domain/service/deal"
	"deal_service/internal/infrastructure/persistence"
	"deal_service/internal/server"
	"deal_service/pkg/dbtest"
	"deal_service/pkg/httpx"
	"deal_service/pkg/logx"
	"deal_service/pkg/middlewarex"
	"deal_service/pkg/rest"
	"deal_service/pkg/tests"
)

type testEnv struct {
	api     tests.APIClient
	emitter *service.EventEmitterMock
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	db := dbtest.NewSQLite(t)

	emitter := &service.EventEmitterMock{
		DealCreatedFunc: func(context.Context, int64) {},
		DealUpdatedFunc: func(context.Context, int64) {},
		DealDeletedFunc: func(context.Context, int64) {},
	}

	srv := server.NewServer(
		server.NewDealServer(service.NewDealService(persistence.NewDealRepository(db), emitter)),
		server.NewCatalogServer(catalog.NewService(
			persistence.NewCompanyRepository(db),
			persistence.NewDistributorRepository(db),
			persistence.NewTagRepository(db),
		)),
	)

	ts := httptest.NewServer(srv.Router(server.RouterOptions{
		Metrics:             middlewarex.NewHTTPMetrics(prometheus.NewRegistry(), "test"),
		SensitiveDataMasker: logx.NewSensitiveDataMasker(),
		LogFieldMaxLen:      1024,
	}))
	t.Cleanup(ts.Close)

	client := &http.Client{Transport: httpx.NewLoggingRoundTripper(http.DefaultTransport)}

	return testEnv{
		api:     tests.NewAPIClient(t, ts.URL, client),
		emitter: emitter,
	}
}

func (e testEnv) createCompany(t *testing.T, name string) rest.Company {
	t.Helper()

	var company rest.Company
	resp, err := e.api.Post(context.Background(), "/companies/", nil, rest.CreateCompanyRequest{Name: name}, &company, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	return company
}

func (e testEnv) createTag(t *testing.T, name string) rest.Tag {
	t.Helper()

	var tag rest.Tag
	resp, err := e.api.Post(context.Background(), "/tags/", nil, rest.CreateTagRequest{Name: name}, &tag, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	return tag
}

func dealPath(id int64) string {
	return "/deals/" + strconv.FormatInt(id, 10) + "/"
}

func TestDealsCRUD(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()
	env := newTestEnv(t)

	company := env.createCompany(t, "Acme")
	hot := env.createTag(t, "hot")
	cold := env.createTag(t, "cold")

	var list rest.DealList
	resp, err := env.api.Get(ctx, "/deals/", nil, &list, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.NotNil(list.Deals)
	rq.Empty(list.Deals)

	var created rest.Deal
	resp, err = env.api.PostJSON(ctx, "/deals/", nil,
		`{"title":"Renewal","companyId":`+strconv.FormatInt(company.ID, 10)+
			`,"value":"1500.5","tags":[`+strconv.FormatInt(hot.ID, 10)+`]}`,
		&created, nil)
	rq.NoError(err)
	rq.Equal(http.StatusCreated, resp.StatusCode)
	rq.Equal("Renewal", created.Title)
	rq.Equal(company.ID, created.CompanyID)
	rq.Nil(created.DistributorID)
	rq.Equal([]int64{hot.ID}, created.Tags)
	rq.Equal("1500.50", created.Value)
	rq.NotEmpty(resp.Header.Get("X-Trace-Id"))

	rq.Len(env.emitter.DealCreatedCalls(), 1)
	rq.Equal(created.ID, env.emitter.DealCreatedCalls()[0].DealID)

	var got rest.Deal
	resp, err = env.api.Get(ctx, "/deals/"+strconv.FormatInt(created.ID, 10), nil, &got, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal(created, got)

	var updated rest.Deal
	resp, err = env.api.Put(ctx, dealPath(created.ID), nil, map[string]any{
		"title": "Renewal 2025",
		"tags":  []int64{cold.ID},
		"value": 99.99,
	}, &updated, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal("Renewal 2025", updated.Title)
	rq.Equal([]int64{cold.ID}, updated.Tags)
	rq.Equal("99.99", updated.Value)
	rq.Equal(created.CreatedAt, updated.CreatedAt)

	rq.Len(env.emitter.DealUpdatedCalls(), 1)

	var result rest.DeleteResult
	resp, err = env.api.Delete(ctx, dealPath(created.ID), nil, &result, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.True(result.Success)

	rq.Len(env.emitter.DealDeletedCalls(), 1)

	var apiErr rest.Error
	resp, err = env.api.Delete(ctx, dealPath(created.ID), nil, nil, &apiErr)
	rq.NoError(err)
	rq.Equal(http.StatusNotFound, resp.StatusCode)
	rq.Equal(rest.ErrorCode("DealNotFound"), apiErr.Code)
	rq.Equal(resp.Header.Get("X-Trace-Id"), apiErr.SupportID)

	rq.Len(env.emitter.DealDeletedCalls(), 1)
}

func TestDealsErrors(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()
	env := newTestEnv(t)

	company := env.createCompany(t, "Acme")
	companyID := strconv.FormatInt(company.ID, 10)

	testCases := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{
			name:   "Malformed JSON",
			body:   `{"title":`,
			status: http.StatusBadRequest,
			code:   "ValidationError",
		},
		{
			name:   "Missing title",
			body:   `{"companyId":` + companyID + `,"value":10}`,
			status: http.StatusBadRequest,
			code:   "ValidationError",
		},
		{
			name:   "Unknown company",
			body:   `{"title":"x","companyId":999,"value":10}`,
			status: http.StatusNotFound,
			code:   "CompanyNotFound",
		},
		{
			name:   "Unknown distributor",
			body:   `{"title":"x","companyId":` + companyID + `,"value":10,"distributorId":5}`,
			status: http.StatusNotFound,
			code:   "DistributorNotFound",
		},
		{
			name:   "Too many decimal places",
			body:   `{"title":"x","companyId":` + companyID + `,"value":"1.234"}`,
			status: http.StatusBadRequest,
			code:   "InvalidDealValue",
		},
		{
			name:   "Missing value",
			body:   `{"title":"x","companyId":` + companyID + `}`,
			status: http.StatusBadRequest,
			code:   "InvalidDealValue",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var apiErr rest.Error
			resp, err := env.api.PostJSON(ctx, "/deals", nil, tc.body, nil, &apiErr)
			rq.NoError(err)
			rq.Equal(tc.status, resp.StatusCode)
			rq.Equal(rest.ErrorCode(tc.code), apiErr.Code)
			rq.NotEmpty(apiErr.SupportID)
		})
	}

	var apiErr rest.Error
	resp, err := env.api.Get(ctx, "/deals/abc/", nil, nil, &apiErr)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal(rest.ErrorCode("InvalidDealID"), apiErr.Code)

	resp, err = env.api.Put(ctx, dealPath(404), nil, map[string]any{"title": "x"}, nil, &apiErr)
	rq.NoError(err)
	rq.Equal(http.StatusNotFound, resp.StatusCode)
	rq.Equal(rest.ErrorCode("DealNotFound"), apiErr.Code)

	rq.Empty(env.emitter.DealCreatedCalls())
	rq.Empty(env.emitter.DealUpdatedCalls())
}

func TestDealsValidationFields(t *testing.T) {
	rq := require.New(t)
	env := newTestEnv(t)

	var apiErr rest.Error
	resp, err := env.api.PostJSON(context.Background(), "/deals/", nil, `{"title":"","companyId":0}`, nil, &apiErr)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)

	fields := make(map[string]string, len(apiErr.Fields))
	for _, f := range apiErr.Fields {
		fields[f.Field] = f.Tag
	}

	rq.Equal(map[string]string{"title": "required", "companyId": "required"}, fields)
}

func TestCatalog(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()
	env := newTestEnv(t)

	var distributor rest.Distributor
	resp, err := env.api.Post(ctx, "/distributors", nil, rest.CreateDistributorRequest{
		Name: "Wholesale", ContactEmail: "sales@example.com",
	}, &distributor, nil)
	rq.NoError(err)
	rq.Equal(http.StatusCreated, resp.StatusCode)
	rq.Equal("sales@example.com", distributor.ContactEmail)

	var apiErr rest.Error
	resp, err = env.api.Post(ctx, "/distributors/", nil, rest.CreateDistributorRequest{
		Name: "Broken", ContactEmail: "not-an-email",
	}, nil, &apiErr)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Len(apiErr.Fields, 1)
	rq.Equal("contactEmail", apiErr.Fields[0].Field)

	env.createTag(t, "hot")

	resp, err = env.api.Post(ctx, "/tags/", nil, rest.CreateTagRequest{Name: "hot"}, nil, &apiErr)
	rq.NoError(err)
	rq.Equal(http.StatusConflict, resp.StatusCode)
	rq.Equal(rest.ErrorCode("TagAlreadyExists"), apiErr.Code)

	var tags rest.TagList
	resp, err = env.api.Get(ctx, "/tags/", nil, &tags, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Len(tags.Tags, 1)

	company := env.createCompany(t, "Acme")

	var deal rest.Deal
	resp, err = env.api.Post(ctx, "/deals/", nil, map[string]any{
		"title":         "Cascade",
		"companyId":     company.ID,
		"value":         "10.00",
		"distributorId": distributor.ID,
	}, &deal, nil)
	rq.NoError(err)
	rq.Equal(http.StatusCreated, resp.StatusCode)
	rq.Equal(distributor.ID, *deal.DistributorID)

	resp, err = env.api.Delete(ctx, "/distributors/"+strconv.FormatInt(distributor.ID, 10), nil, nil, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)

	resp, err = env.api.Get(ctx, dealPath(deal.ID), nil, &deal, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Nil(deal.DistributorID)

	resp, err = env.api.Delete(ctx, "/companies/"+strconv.FormatInt(company.ID, 10)+"/", nil, nil, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)

	resp, err = env.api.Get(ctx, dealPath(deal.ID), nil, nil, &apiErr)
	rq.NoError(err)
	rq.Equal(http.StatusNotFound, resp.StatusCode)

	resp, err = env.api.Get(ctx, "/companies/"+strconv.FormatInt(company.ID, 10), nil, nil, &apiErr)
	rq.NoError(err)
	rq.Equal(http.StatusNotFound, resp.StatusCode)
	rq.Equal(rest.ErrorCode("CompanyNotFound"), apiErr.Code)
}

func TestDealsRandomValues(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()
	env := newTestEnv(t)
	random := tests.NewRandomizer()
	t.Logf("randomizer seed: %d", random.Seed)

	company := env.createCompany(t, "Globex")
	tag := env.createTag(t, "random")

	for range 20 {
		value := random.DealValue(1_000_000)

		req := rest.CreateDealRequest{
			Title:     random.Title("Deal"),
			CompanyID: company.ID,
			Value:     value,
		}
		if random.Bool() {
			req.Tags = []int64{tag.ID}
		}

		var created rest.Deal
		resp, err := env.api.Post(ctx, "/deals/", nil, req, &created, nil)
		rq.NoError(err)
		rq.Equal(http.StatusCreated, resp.StatusCode)
		rq.Equal(value.StringFixed(2), created.Value)
		rq.Len(created.Tags, len(req.Tags))
	}

	var list rest.DealList
	_, err := env.api.Get(ctx, "/deals/", nil, &list, nil)
	rq.NoError(err)
	rq.Len(list.Deals, 20)
}
