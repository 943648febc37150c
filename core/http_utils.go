package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	urlpkg "net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// validateResponse returns nil for 2xx responses and an *ApiError otherwise.
// The body of a failed response is consumed.
func validateResponse(response *http.Response) error {
	requestURL := "<unknown URL>"
	method := "<unknown method>"
	if response == nil {
		return &ApiError{
			Method:     method,
			URL:        requestURL,
			StatusCode: 0,
			Body:       "server unreachable: verify the service URL is correct and the network is accessible",
		}
	}
	if response.StatusCode >= 200 && response.StatusCode <= 299 {
		return nil
	}
	if response.Request != nil {
		if response.Request.URL != nil {
			requestURL = response.Request.URL.String()
		}
		method = response.Request.Method
	}
	body := getResponseBodyAsStr(response)
	return &ApiError{
		Method:        method,
		URL:           requestURL,
		StatusCode:    response.StatusCode,
		Body:          body,
		Message:       errorMessageFromBody(body),
		TransactionID: response.Header.Get(HeaderTransactionID),
	}
}

// errorMessageFromBody extracts the human readable message from a Watson
// error payload. Services answer either {"error": "...", "code": 404} or
// {"errors": [{"message": "..."}]}; IAM answers {"errorMessage": "..."}.
func errorMessageFromBody(body string) string {
	var payload struct {
		Error        any    `json:"error"`
		ErrorMessage string `json:"errorMessage"`
		Message      string `json:"message"`
		Errors       []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return ""
	}
	switch e := payload.Error.(type) {
	case string:
		if e != "" {
			return e
		}
	case map[string]any:
		if msg, ok := e["message"].(string); ok {
			return msg
		}
	}
	if len(payload.Errors) > 0 && payload.Errors[0].Message != "" {
		return payload.Errors[0].Message
	}
	if payload.ErrorMessage != "" {
		return payload.ErrorMessage
	}
	return payload.Message
}

var pathParamPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// expandPath substitutes every {name} placeholder in template with the
// escaped value from params. A placeholder without a value is an error.
func expandPath(template string, params map[string]string) (string, error) {
	var missing []string
	expanded := pathParamPattern.ReplaceAllStringFunc(template, func(m string) string {
		name := m[1 : len(m)-1]
		v, ok := params[name]
		if !ok || v == "" {
			missing = append(missing, name)
			return m
		}
		return urlpkg.PathEscape(v)
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("path %q: no value for %s", template, strings.Join(missing, ", "))
	}
	return expanded, nil
}

// buildUrl joins the escaped path to the service base URL and attaches the query.
func buildUrl(baseURL, path, query string) (string, error) {
	base, err := urlpkg.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid service URL %q: %w", baseURL, err)
	}
	// path is already escaped; keep RawPath so %2F in identifiers survives.
	rawPath := strings.TrimRight(base.EscapedPath(), "/") + "/" + strings.TrimLeft(path, "/")
	decoded, err := urlpkg.PathUnescape(rawPath)
	if err != nil {
		return "", err
	}
	base.Path = decoded
	base.RawPath = rawPath
	base.RawQuery = query
	return base.String(), nil
}

// convertMapToQuery converts a map[string]any to a URL query string.
// Slices and arrays are joined with commas, booleans and numbers use their
// canonical string form.
func convertMapToQuery(params Params) string {
	values := urlpkg.Values{}
	for k, v := range params {
		values.Set(k, queryValue(v))
	}
	return values.Encode()
}

func queryValue(v any) string {
	switch typed := v.(type) {
	case string:
		return typed
	case bool:
		return strconv.FormatBool(typed)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case fmt.Stringer:
		return typed.String()
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		parts := make([]string, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			parts[i] = queryValue(rv.Index(i).Interface())
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprint(v)
}

// getResponseBodyAsStr reads and returns the HTTP response body as a string.
// JSON bodies are pretty-printed. The body is consumed.
func getResponseBodyAsStr(r *http.Response) string {
	var b bytes.Buffer
	if r == nil || r.Body == nil {
		return ""
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return ""
	}
	if err = json.Indent(&b, body, "", "  "); err == nil {
		return b.String()
	}
	return string(body)
}

// MergeHeaders combines per-call header sets; later sets override earlier ones key by key.
func MergeHeaders(headers ...http.Header) http.Header {
	if len(headers) == 0 {
		return nil
	}
	merged := make(http.Header)
	for _, h := range headers {
		for key, values := range h {
			merged[http.CanonicalHeaderKey(key)] = append([]string(nil), values...)
		}
	}
	return merged
}
