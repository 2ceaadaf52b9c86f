package remote

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
	"github.com/vng-realisatie/klantinteracties/internal/core/ports"
)

const zakenSpec = `openapi: 3.0.0
info:
  title: Zaken
  version: 1.0.0
paths: {}
components:
  schemas:
    Zaak:
      type: object
      required: [url, identificatie]
      properties:
        url:
          type: string
        identificatie:
          type: string
`

type stubRetriever map[string]ports.Object

func (s stubRetriever) Retrieve(_ context.Context, url string) (ports.Object, error) {
	obj, ok := s[url]
	if !ok {
		return nil, errors.New("status 404")
	}
	return obj, nil
}

func writeSpec(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "zrc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(zakenSpec), 0o600))
	return path
}

func TestSchemaValidator(t *testing.T) {
	docs, err := LoadSpecs(writeSpec(t), "")
	require.NoError(t, err)
	require.Len(t, docs, 1)

	fetcher := stubRetriever{
		"http://zrc.test/zaken/1": {"url": "http://zrc.test/zaken/1", "identificatie": "ZAAK-1"},
		"http://zrc.test/other/1": {"url": "http://zrc.test/other/1"},
	}
	v := NewSchemaValidator(fetcher, docs)
	ctx := context.Background()

	tests := []struct {
		name string
		url  string
		code string
	}{
		{name: "valid zaak", url: "http://zrc.test/zaken/1"},
		{name: "malformed url", url: "not a url", code: domain.CodeBadURL},
		{name: "unreachable", url: "http://zrc.test/zaken/404", code: domain.CodeBadURL},
		{name: "wrong shape", url: "http://zrc.test/other/1", code: domain.CodeInvalidResource},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(ctx, "object", "Zaak", tc.url)
			if tc.code == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, domain.HasCode(err, tc.code), "got %v", err)
		})
	}

	// Unknown schemas only require the URL to resolve.
	assert.NoError(t, v.Validate(ctx, "informatieobject", "EnkelvoudigInformatieObject", "http://zrc.test/other/1"))
}

func TestLoadSpecs_MissingFile(t *testing.T) {
	_, err := LoadSpecs(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
