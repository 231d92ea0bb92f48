package utils

import (
	"fmt"
	"net"
)

// CheckPortAvailable reports an error when addr cannot be listened on,
// typically because another server already holds the port
func CheckPortAvailable(addr string) error {
	Verbose("Checking if %s is available", addr)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		Verbose("error: %v", err)
		return fmt.Errorf("address %s is not available: %w", addr, err)
	}

	return listener.Close()
}
