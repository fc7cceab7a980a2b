package ssh

import (
	"testing"
	"time"
)

func TestNewClient_DefaultPort(t *testing.T) {
	client := NewClient("host", "user", 0, "secret")
	if client.Port != 22 {
		t.Errorf("expected default port 22, got %d", client.Port)
	}
}

func TestNewClient_CustomPort(t *testing.T) {
	client := NewClient("host", "user", 2222, "secret")
	if client.Port != 2222 {
		t.Errorf("expected port 2222, got %d", client.Port)
	}
}

func TestNewClient_DefaultTimeout(t *testing.T) {
	client := NewClient("host", "user", 22, "secret")
	if client.opts.timeout != DefaultTimeout {
		t.Errorf("expected timeout %v, got %v", DefaultTimeout, client.opts.timeout)
	}
}

func TestNewClient_WithOptions(t *testing.T) {
	client := NewClient("host", "user", 22, "secret",
		WithTimeout(10*time.Second),
		WithKeyFile("~/.ssh/id_ed25519"),
	)

	if client.opts.timeout != 10*time.Second {
		t.Errorf("expected timeout 10s, got %v", client.opts.timeout)
	}
	if client.opts.keyFile != "~/.ssh/id_ed25519" {
		t.Errorf("expected key file path to be stored, got %q", client.opts.keyFile)
	}
}

func TestAuthMethods_NoCredentials(t *testing.T) {
	client := NewClient("host", "user", 22, "")
	_, err := client.authMethods()
	if err == nil {
		t.Fatal("expected error when neither password nor key file is set")
	}
	if KindOf(err) != KindConfigMissing {
		t.Errorf("expected KindConfigMissing, got %v", KindOf(err))
	}
}

func TestAuthMethods_PasswordOnly(t *testing.T) {
	client := NewClient("host", "user", 22, "secret")
	auths, err := client.authMethods()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(auths) != 1 {
		t.Errorf("expected 1 auth method, got %d", len(auths))
	}
}

func TestIsConnected_NilClient(t *testing.T) {
	client := NewClient("host", "user", 22, "secret")
	if client.IsConnected() {
		t.Error("expected IsConnected() to return false before Connect")
	}
}

func TestClose_Idempotent(t *testing.T) {
	client := NewClient("host", "user", 22, "secret")
	if err := client.Close(); err != nil {
		t.Errorf("expected nil error for Close on unconnected client, got %v", err)
	}
	if err := client.Close(); err != nil {
		t.Errorf("expected nil error for second Close, got %v", err)
	}
}

func TestNewSession_NotConnected(t *testing.T) {
	client := NewClient("host", "user", 22, "secret")
	_, err := client.NewSession()
	if err == nil {
		t.Error("expected error when creating session before Connect")
	}
}

func TestSFTP_NotConnected(t *testing.T) {
	client := NewClient("host", "user", 22, "secret")
	_, err := client.SFTP()
	if err == nil {
		t.Error("expected error when opening sftp before Connect")
	}
}
