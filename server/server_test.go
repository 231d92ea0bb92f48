package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/mobile-next/swipecli/commands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain installs a session registry shared by all tests
func TestMain(m *testing.M) {
	registry, err := commands.NewSessionRegistry(16)
	if err != nil {
		fmt.Printf("Failed to create session registry: %v\n", err)
		os.Exit(1)
	}
	commands.SetRegistry(registry)

	os.Exit(m.Run())
}

func postRPC(t *testing.T, url string, payload interface{}) map[string]interface{} {
	var body []byte
	switch p := payload.(type) {
	case string:
		body = []byte(p)
	default:
		var err error
		body, err = json.Marshal(p)
		require.NoError(t, err)
	}

	resp, err := http.Post(url+"/rpc", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&data))
	return data
}

func rpc(method string, params interface{}) map[string]interface{} {
	return map[string]interface{}{
		"jsonrpc": "2.0",
		"method":  method,
		"params":  params,
		"id":      1,
	}
}

func resultMap(t *testing.T, data map[string]interface{}) map[string]interface{} {
	require.Nil(t, data["error"], "unexpected error: %v", data["error"])
	result, ok := data["result"].(map[string]interface{})
	require.True(t, ok, "result should be an object")
	return result
}

func errorMap(t *testing.T, data map[string]interface{}) map[string]interface{} {
	errObj, ok := data["error"].(map[string]interface{})
	require.True(t, ok, "expected an error, got %v", data)
	return errObj
}

// TestRootEndpoint tests that the root endpoint returns status "ok"
func TestRootEndpoint(t *testing.T) {
	server := httptest.NewServer(NewHandler(Options{}))
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)

	var data map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&data))

	assert.Equal(t, "ok", data["status"])
	assert.Equal(t, Version, data["version"])
}

// TestRPCEndpointMethods tests HTTP method handling for /rpc endpoint
func TestRPCEndpointMethods(t *testing.T) {
	server := httptest.NewServer(NewHandler(Options{}))
	defer server.Close()

	tests := []struct {
		name           string
		method         string
		expectedStatus int
	}{
		{
			name:           "GET should return 405 Method Not Allowed",
			method:         "GET",
			expectedStatus: 405,
		},
		{
			name:           "PUT should return 405 Method Not Allowed",
			method:         "PUT",
			expectedStatus: 405,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, server.URL+"/rpc", nil)
			require.NoError(t, err)

			client := &http.Client{}
			resp, err := client.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

// TestJSONRPCValidation tests JSON-RPC request validation
func TestJSONRPCValidation(t *testing.T) {
	server := httptest.NewServer(NewHandler(Options{}))
	defer server.Close()

	tests := []struct {
		name    string
		payload interface{}
		code    int
		data    string
	}{
		{"empty body", "", ErrCodeParseError, errMsgParseError},
		{"wrong version", map[string]interface{}{"jsonrpc": "1.0", "method": "profiles", "id": 1}, ErrCodeInvalidRequest, errMsgInvalidJSONRPC},
		{"missing id", map[string]interface{}{"jsonrpc": "2.0", "method": "profiles"}, ErrCodeInvalidRequest, errMsgIDRequired},
		{"missing method", map[string]interface{}{"jsonrpc": "2.0", "id": 1}, ErrCodeInvalidRequest, errMsgMethodRequired},
		{"unknown method", rpc("teleport", nil), ErrCodeMethodNotFound, "Method 'teleport' not found"},
		{"classify without params", map[string]interface{}{"jsonrpc": "2.0", "method": "classify", "id": 1}, ErrCodeInvalidParams, "'params' is required with fields: sample, profile, config"},
		{"classify without sample", rpc("classify", map[string]interface{}{}), ErrCodeInvalidParams, "'sample' is required"},
		{"unknown profile", rpc("classify", map[string]interface{}{"sample": map[string]float64{}, "profile": "zigzag"}), ErrCodeInvalidParams, ""},
		{"swipe missing coordinate", rpc("swipe", map[string]interface{}{"x1": 1, "y1": 1, "x2": 5}), ErrCodeInvalidParams, "'y2' is required"},
		{"gesture with unknown action", rpc("gesture", map[string]interface{}{"actions": []map[string]interface{}{{"type": "wiggle"}}}), ErrCodeInvalidParams, "unknown action type at index 0: 'wiggle'"},
		{"replay without samples", rpc("replay", map[string]interface{}{}), ErrCodeServerError, "samples array is required and cannot be empty"},
		{"session without id", rpc("session_state", map[string]interface{}{}), ErrCodeInvalidParams, "'sessionId' is required"},
		{"session not found", rpc("session_state", map[string]interface{}{"sessionId": "nope"}), ErrCodeServerError, "session not found: nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errObj := errorMap(t, postRPC(t, server.URL, tt.payload))
			assert.Equal(t, float64(tt.code), errObj["code"])
			if tt.data != "" {
				assert.Equal(t, tt.data, errObj["data"])
			}
		})
	}
}

func TestClassifyMethod(t *testing.T) {
	server := httptest.NewServer(NewHandler(Options{}))
	defer server.Close()

	result := resultMap(t, postRPC(t, server.URL, rpc("classify", map[string]interface{}{
		"sample":  map[string]float64{"dx": 50, "dy": 2, "vx": 0.9, "vy": 0.1},
		"profile": "horizontal",
	})))

	assert.Equal(t, true, result["eligible"])
	assert.Equal(t, "SWIPE_RIGHT", result["direction"])
	assert.Equal(t, "horizontal", result["axis"])

	result = resultMap(t, postRPC(t, server.URL, rpc("classify", map[string]interface{}{
		"sample": map[string]float64{"dx": 50, "dy": 20, "vx": 0.9, "vy": 0.1},
		"config": map[string]interface{}{"horizontal": true, "vertical": false},
	})))

	assert.Equal(t, false, result["eligible"])
	assert.Nil(t, result["direction"])
}

func TestReplayMethod(t *testing.T) {
	server := httptest.NewServer(NewHandler(Options{}))
	defer server.Close()

	result := resultMap(t, postRPC(t, server.URL, rpc("replay", map[string]interface{}{
		"samples": []map[string]float64{
			{"dx": 50, "dy": 2, "vx": 0.9},
			{"dx": 80, "dy": 2, "vx": 1.1},
		},
		"config":    map[string]interface{}{"continuous": false},
		"terminate": true,
	})))

	events := result["events"].([]interface{})
	require.Len(t, events, 2)
	assert.Equal(t, "begin", events[0].(map[string]interface{})["type"])
	assert.Equal(t, "end", events[1].(map[string]interface{})["type"])
	assert.Equal(t, "idle", result["phase"])
}

func TestSwipeMethod(t *testing.T) {
	server := httptest.NewServer(NewHandler(Options{}))
	defer server.Close()

	result := resultMap(t, postRPC(t, server.URL, rpc("swipe", map[string]interface{}{
		"x1": 200, "y1": 900, "x2": 200, "y2": 300, "duration": 250,
	})))

	events := result["events"].([]interface{})
	require.NotEmpty(t, events)
	first := events[0].(map[string]interface{})
	assert.Equal(t, "begin", first["type"])
	assert.Equal(t, "SWIPE_UP", first["direction"])
	assert.NotNil(t, result["script"])
}

func TestSessionMethods(t *testing.T) {
	server := httptest.NewServer(NewHandler(Options{}))
	defer server.Close()

	created := resultMap(t, postRPC(t, server.URL, rpc("session_create", map[string]interface{}{"profile": "vertical"})))
	id := created["sessionId"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "armed", created["phase"])

	claim := resultMap(t, postRPC(t, server.URL, rpc("session_claim", map[string]interface{}{
		"sessionId": id,
		"sample":    map[string]float64{"dx": 1, "dy": 40, "vy": 1.5},
	})))
	assert.Equal(t, true, claim["claim"])

	sampled := resultMap(t, postRPC(t, server.URL, rpc("session_sample", map[string]interface{}{
		"sessionId": id,
		"samples": []map[string]float64{
			{"dx": 1, "dy": 40, "vy": 1.5},
			{"dx": 2, "dy": 60, "vy": 1.2},
		},
	})))
	assert.Len(t, sampled["events"], 2)
	assert.Equal(t, "locked", sampled["phase"])

	state := resultMap(t, postRPC(t, server.URL, rpc("session_state", map[string]interface{}{"sessionId": id})))
	gestureState := state["gestureState"].(map[string]interface{})
	assert.Equal(t, "SWIPE_DOWN", gestureState["direction"])
	assert.Equal(t, float64(60), gestureState["distance"])

	terminated := resultMap(t, postRPC(t, server.URL, rpc("session_terminate", map[string]interface{}{"sessionId": id})))
	assert.Len(t, terminated["events"], 1)

	terminated = resultMap(t, postRPC(t, server.URL, rpc("session_terminate", map[string]interface{}{"sessionId": id})))
	assert.Len(t, terminated["events"], 0)

	resultMap(t, postRPC(t, server.URL, rpc("session_delete", map[string]interface{}{"sessionId": id})))
	errorMap(t, postRPC(t, server.URL, rpc("session_state", map[string]interface{}{"sessionId": id})))
}

func TestProfilesMethod(t *testing.T) {
	server := httptest.NewServer(NewHandler(Options{}))
	defer server.Close()

	result := resultMap(t, postRPC(t, server.URL, rpc("profiles", nil)))
	assert.Len(t, result["profiles"], 3)
}

func TestTokenRequired(t *testing.T) {
	server := httptest.NewServer(NewHandler(Options{Token: "s3cret"}))
	defer server.Close()

	body, err := json.Marshal(rpc("profiles", nil))
	require.NoError(t, err)

	resp, err := http.Post(server.URL+"/rpc", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, err := http.NewRequest(http.MethodPost, server.URL+"/rpc", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer s3cret")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// banner stays public
	resp, err = http.Get(server.URL)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestTokenRequiresBearerScheme(t *testing.T) {
	server := httptest.NewServer(NewHandler(Options{Token: "s3cret"}))
	defer server.Close()

	body, err := json.Marshal(rpc("profiles", nil))
	require.NoError(t, err)

	for _, header := range []string{"s3cret", "Basic s3cret", "bearer s3cret"} {
		t.Run(header, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, server.URL+"/rpc", bytes.NewReader(body))
			require.NoError(t, err)
			req.Header.Set("Authorization", header)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	server := httptest.NewServer(NewHandler(Options{EnableCORS: true}))
	defer server.Close()

	req, err := http.NewRequest(http.MethodOptions, server.URL+"/rpc", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestNormalizeAddr(t *testing.T) {
	addr, err := normalizeAddr("12000")
	require.NoError(t, err)
	assert.Equal(t, ":12000", addr)

	addr, err = normalizeAddr("localhost:12000")
	require.NoError(t, err)
	assert.Equal(t, "localhost:12000", addr)

	_, err = normalizeAddr("nope")
	assert.Error(t, err)
}

func TestExecute(t *testing.T) {
	_, err := Execute("teleport", nil)
	assert.Error(t, err)

	result, err := Execute("profiles", nil)
	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestShutdownMethod(t *testing.T) {
	called := make(chan struct{})
	setShutdownHook(func() { close(called) })
	defer setShutdownHook(nil)

	server := httptest.NewServer(NewHandler(Options{}))
	defer server.Close()

	data := postRPC(t, server.URL, rpc(MethodShutdown, nil))
	assert.Equal(t, "ok", resultMap(t, data)["status"])

	select {
	case <-called:
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown hook was not invoked")
	}
}

func TestStartServerPortInUse(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	err = StartServer(listener.Addr().String(), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not available")
}
