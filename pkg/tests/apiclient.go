package tests

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"testing"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// APIClient — JSON-клиент для интеграционных тестов HTTP API. Запросы и
// ответы пишутся в лог теста, поэтому видны только при падении или -v.
type APIClient struct {
	t          testing.TB
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(
	t testing.TB,
	baseURL string,
	httpClient *http.Client,
) APIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return APIClient{
		t:          t,
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (a APIClient) Get(
	ctx context.Context,
	endpoint string,
	headers http.Header,
	dest any,
	errDest any,
) (*http.Response, error) {
	return a.do(ctx, http.MethodGet, endpoint, headers, http.NoBody, dest, errDest)
}

// Post кодирует request в JSON.
func (a APIClient) Post(
	ctx context.Context,
	endpoint string,
	headers http.Header,
	request any,
	dest any,
	errDest any,
) (*http.Response, error) {
	return a.sendJSON(ctx, http.MethodPost, endpoint, headers, request, dest, errDest)
}

// PostJSON отправляет тело как есть. Нужен для проверки невалидного JSON.
func (a APIClient) PostJSON(
	ctx context.Context,
	endpoint string,
	headers http.Header,
	requestJSON string,
	dest any,
	errDest any,
) (*http.Response, error) {
	return a.do(ctx, http.MethodPost, endpoint, headers, bytes.NewReader([]byte(requestJSON)), dest, errDest)
}

func (a APIClient) Put(
	ctx context.Context,
	endpoint string,
	headers http.Header,
	request any,
	dest any,
	errDest any,
) (*http.Response, error) {
	return a.sendJSON(ctx, http.MethodPut, endpoint, headers, request, dest, errDest)
}

func (a APIClient) Delete(
	ctx context.Context,
	endpoint string,
	headers http.Header,
	dest any,
	errDest any,
) (*http.Response, error) {
	return a.do(ctx, http.MethodDelete, endpoint, headers, http.NoBody, dest, errDest)
}

func (a APIClient) sendJSON(
	ctx context.Context,
	httpMethod string,
	endpoint string,
	headers http.Header,
	request any,
	dest any,
	errDest any,
) (*http.Response, error) {
	b, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return a.do(ctx, httpMethod, endpoint, headers, bytes.NewReader(b), dest, errDest)
}

func (a APIClient) do(
	ctx context.Context,
	httpMethod string,
	endpoint string,
	headers http.Header,
	payload io.Reader,
	dest any,
	errDest any,
) (*http.Response, error) {
	a.t.Helper()

	req, err := http.NewRequestWithContext(ctx, httpMethod, a.baseURL+endpoint, payload)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	if payload != http.NoBody {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header[k] = v
	}

	a.t.Logf("request: %s %s", req.Method, req.URL)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Do: %w", err)
	}

	defer resp.Body.Close()

	if dump, err := httputil.DumpResponse(resp, true); err == nil {
		a.t.Logf("response: %s", dump)
	}

	if err = decodeResponse(resp, dest, errDest); err != nil {
		return nil, fmt.Errorf("decodeResponse: %w", err)
	}

	return resp, nil
}

// decodeResponse разбирает 2xx в dest, остальное в errDest. Пустое тело
// ошибки (например, 405 от роутера) не считается ошибкой.
func decodeResponse(r *http.Response, dest, errDest any) error {
	if r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices {
		if dest == nil {
			return nil
		}

		if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
			return fmt.Errorf("json.Decode(success destination): %w", err)
		}

		return nil
	}

	if errDest == nil {
		return nil
	}

	if err := json.NewDecoder(r.Body).Decode(errDest); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("json.Decode(err destination): %w", err)
	}

	return nil
}
