package server

import (
	"net"
	"testing"
)

func TestIsAddrInUse(t *testing.T) {
	first, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	defer func() { _ = first.Close() }()

	second, err := net.Listen("tcp", first.Addr().String())
	if err == nil {
		_ = second.Close()
		t.Fatal("expected second bind on the same port to fail")
	}

	if !isAddrInUse(err) {
		t.Errorf("isAddrInUse(%v) = false, want true", err)
	}
}

func TestIsAddrInUse_OtherErrors(t *testing.T) {
	_, err := net.Listen("tcp", "256.256.256.256:0")
	if err == nil {
		t.Fatal("expected bind on invalid address to fail")
	}

	if isAddrInUse(err) {
		t.Errorf("isAddrInUse(%v) = true, want false", err)
	}
}
