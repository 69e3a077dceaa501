package aptosagora

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport dumps each HTTP request and response for troubleshooting
// node communication: timeouts, malformed payloads, unexpected replies.
//
// Enabled by WithDebugLogging or by setting AGORA_DEBUG=true (SDK-specific)
// or DEBUG=true (general). Dumps include full bodies, so keep it out of
// production environments.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if debugLoggingRequested() {
		if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
			log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
		}
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		if debugLoggingRequested() {
			log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		}
		return nil, err
	}

	if debugLoggingRequested() {
		if respDump, err := httputil.DumpResponse(resp, true); err == nil {
			log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
		}
	}
	return resp, nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
// Both AGORA_DEBUG=true and DEBUG=true are honored so the SDK can be
// inspected in isolation or as part of broader application debugging.
func debugLoggingRequested() bool {
	return os.Getenv("AGORA_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
