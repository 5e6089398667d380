package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"deal_service/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Password",
			input:  []byte(`{"hello":"world","password":"abc123"}`),
			output: []byte(`{"hello":"world","password":"[MASKED]"}`),
		},
		{
			name:   "Password capital letter",
			input:  []byte(`{"hello":"world","Password":"abc123"}`),
			output: []byte(`{"hello":"world","Password":"[MASKED]"}`),
		},
		{
			name:   "Distributor contact email",
			input:  []byte(`{"id":3,"name":"Acme Supply","contactEmail":"sales@acme.io"}`),
			output: []byte(`{"id":3,"name":"Acme Supply","contactEmail":"[MASKED]"}`),
		},
		{
			name:   "Company address",
			input:  []byte(`{"name": "Initech", "address": "4120 Freidrich Ln"}`),
			output: []byte(`{"name": "Initech", "address": "[MASKED]"}`),
		},
		{
			name:   "Telegram bot token in request line",
			input:  []byte("POST /bot123456:AAHdqTcvCH1vGWJxfSeofSAs0K5PALDsaw/sendMessage HTTP/1.1\r\n"),
			output: []byte("POST /bot[MASKED]/sendMessage HTTP/1.1\r\n"),
		},
		{
			name:   "Nothing to mask",
			input:  []byte(`{"title":"Renewal","value":"100.00"}`),
			output: []byte(`{"title":"Renewal","value":"100.00"}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}
