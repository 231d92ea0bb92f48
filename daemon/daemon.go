package daemon

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"syscall"
	"time"

	"github.com/mobile-next/swipecli/server"
	"github.com/mobile-next/swipecli/utils"
	"github.com/sevlyar/go-daemon"
)

// DaemonEnvVar is set to "1" in the environment of the detached server
const DaemonEnvVar = "SWIPECLI_DAEMON_CHILD"

const killTimeout = 10 * time.Second

// daemonContext describes the detached server process. The server writes its own
// logs, so no pid or log file is kept.
func daemonContext() *daemon.Context {
	return &daemon.Context{
		WorkDir: "/",
		Umask:   027,
		Args:    os.Args,
		Env:     append(os.Environ(), DaemonEnvVar+"=1"),
	}
}

// Daemonize re-executes the current command in the background. The parent
// receives the child process, the child receives nil.
func Daemonize() (*os.Process, error) {
	child, err := daemonContext().Reborn()
	if err != nil {
		return nil, fmt.Errorf("failed to daemonize: %w", err)
	}
	return child, nil
}

// IsChild reports whether this process is the detached server
func IsChild() bool {
	return os.Getenv(DaemonEnvVar) == "1"
}

// KillServer asks the server listening on addr to shut down. A non-empty
// token is sent as a bearer token.
func KillServer(addr string, token string) error {
	url := ServerURL(addr)

	body, err := json.Marshal(server.JSONRPCRequest{
		JSONRPC: "2.0",
		Method:  server.MethodShutdown,
		ID:      1,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, url+"/rpc", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	utils.Verbose("sending %s to %s", server.MethodShutdown, url)
	client := &http.Client{Timeout: killTimeout}
	resp, err := client.Do(req)
	if errors.Is(err, syscall.ECONNREFUSED) {
		return fmt.Errorf("server is not running on %s", url)
	}
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized:
		return fmt.Errorf("server rejected the shutdown request, check the auth token")
	}
	return fmt.Errorf("server returned error: %s", resp.Status)
}

// ServerURL turns a listen address as accepted by "server start" into the
// base URL of the server. A bare port or a missing host means localhost.
func ServerURL(addr string) string {
	if _, err := strconv.Atoi(addr); err == nil {
		addr = ":" + addr
	}

	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr
	}
	if host == "" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port)
}
