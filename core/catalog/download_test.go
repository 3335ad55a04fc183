package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"opds-client-api/core/domain"
	"opds-client-api/core/interfaces"
)

func newTestDownloadService(client *mockHTTPClient) *DownloadService {
	return NewDownloadService(interfaces.Dependencies{
		HTTPClient: client,
		Logger:     &mockLogger{},
	})
}

func TestDownload_Success(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{
				statusCode: 200,
				body:       "binary-payload",
				headers: map[string]string{
					"Content-Type": "application/epub+zip",
				},
			}, nil
		},
	}
	service := newTestDownloadService(client)

	result := service.Download(context.Background(), "https://lib.example/books/1.epub", nil)

	if !result.Success {
		t.Fatalf("Download failed: %s", result.Error)
	}
	if string(result.Data) != "binary-payload" {
		t.Errorf("Data = %q", result.Data)
	}
	if result.ContentType != "application/epub+zip" {
		t.Errorf("ContentType = %q", result.ContentType)
	}
}

func TestDownload_FilenameFromContentDisposition(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{
				statusCode: 200,
				body:       "data",
				headers: map[string]string{
					"Content-Disposition": `attachment; filename="book.epub"`,
				},
			}, nil
		},
	}
	service := newTestDownloadService(client)

	result := service.Download(context.Background(), "https://lib.example/raw?id=9", nil)

	if result.Filename != "book.epub" {
		t.Errorf("Filename = %q, header should win over URL inference", result.Filename)
	}
}

func TestDownload_FilenameFromURL(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: "data"}, nil
		},
	}
	service := newTestDownloadService(client)

	result := service.Download(context.Background(), "https://lib.example/books/novel.pdf?token=x", nil)

	if result.Filename != "novel.pdf" {
		t.Errorf("Filename = %q, want last path segment", result.Filename)
	}
}

func TestDownload_FilenameFallback(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: "data"}, nil
		},
	}
	service := newTestDownloadService(client)

	result := service.Download(context.Background(), "https://lib.example/raw?id=9", nil)

	if result.Filename != FallbackFilename {
		t.Errorf("Filename = %q, want fallback (last segment has no dot)", result.Filename)
	}
}

func TestDownload_DefaultContentType(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: "data"}, nil
		},
	}
	service := newTestDownloadService(client)

	result := service.Download(context.Background(), "https://lib.example/books/1.epub", nil)

	if result.ContentType != DefaultContentType {
		t.Errorf("ContentType = %q, want default binary type", result.ContentType)
	}
}

func TestDownload_SendsBasicAuth(t *testing.T) {
	var captured map[string]string
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			captured = headers
			return &mockResponse{statusCode: 200, body: "data"}, nil
		},
	}
	service := newTestDownloadService(client)
	source := &domain.Source{
		BaseURL:  "https://lib.example",
		Username: "reader",
		Password: "secret",
	}

	service.Download(context.Background(), "https://lib.example/books/1.epub", source)

	if !strings.HasPrefix(captured["Authorization"], "Basic ") {
		t.Errorf("Authorization header = %q, want Basic auth", captured["Authorization"])
	}
}

func TestDownload_NotFoundIsFailureResult(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 404}, nil
		},
	}
	service := newTestDownloadService(client)

	result := service.Download(context.Background(), "https://lib.example/books/1.epub", nil)

	if result.Success {
		t.Fatal("Download should fail on 404")
	}
	if !strings.Contains(result.Error, "404") {
		t.Errorf("error = %q, should contain status code", result.Error)
	}
}

func TestDownload_TransportErrorIsFailureResult(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			return nil, errors.New("no such host")
		},
	}
	service := newTestDownloadService(client)

	result := service.Download(context.Background(), "https://lib.example/books/1.epub", nil)

	if result.Success {
		t.Fatal("Download should fail on transport error")
	}
	if !strings.Contains(result.Error, "no such host") {
		t.Errorf("error = %q, should carry the underlying message", result.Error)
	}
}

func TestResolveFilename_UnquotedDisposition(t *testing.T) {
	name := resolveFilename("attachment; filename=book.mobi", "https://lib.example/raw")

	if name != "book.mobi" {
		t.Errorf("resolveFilename = %q", name)
	}
}

func TestResolveFilename_FragmentStripped(t *testing.T) {
	name := resolveFilename("", "https://lib.example/books/a.txt#section")

	if name != "a.txt" {
		t.Errorf("resolveFilename = %q", name)
	}
}
