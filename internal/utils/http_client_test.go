package utils

import (
	"testing"
	"time"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("https://api.example.com", time.Second)

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}
	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_BaseURLTrimmed(t *testing.T) {
	client := NewHTTPClient("https://api.example.com/", 0)

	if client.BaseURL != "https://api.example.com" {
		t.Errorf("expected trimmed base url, got %s", client.BaseURL)
	}
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	client := NewHTTPClient("http://x", 5*time.Second)

	if client.GetClient().Timeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", client.GetClient().Timeout)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://x", 0)
	client2 := NewHTTPClient("http://x", 0)

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}
