package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{Boards: []Board{{ID: "academic", URL: "https://example.com/rss", Name: "학사"}}}
	setDefaults(cfg)
	return cfg
}

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		require.NoError(t, VerifyAgainstEmbeddedSchema(validConfig()))
	})

	t.Run("unknown push mode", func(t *testing.T) {
		cfg := validConfig()
		cfg.Push.Mode = "sms"
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config.push.mode")
	})

	t.Run("no boards", func(t *testing.T) {
		cfg := validConfig()
		cfg.Boards = nil
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config.boards")
	})

	t.Run("body limit below minimum", func(t *testing.T) {
		cfg := validConfig()
		cfg.Push.BodyLimit = 0
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config.push.body_limit")
	})

	t.Run("zero server timeout", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.Timeout = 0
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.timeout is required")
	})
}

func TestVerify_BadSchema(t *testing.T) {
	err := verify(validConfig(), []byte("{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse embedded schema")

	err = verify(validConfig(), []byte(`{"$ref":"#/$defs/Missing","$defs":{}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCheckNode(t *testing.T) {
	doc := map[string]any{}
	tests := []struct {
		name    string
		node    string
		val     any
		wantErr bool
	}{
		{name: "string ok", node: `{"type":"string"}`, val: "x"},
		{name: "string mismatch", node: `{"type":"string"}`, val: 1.0, wantErr: true},
		{name: "enum ok", node: `{"type":"string","enum":["a","b"]}`, val: "b"},
		{name: "enum mismatch", node: `{"type":"string","enum":["a","b"]}`, val: "c", wantErr: true},
		{name: "minimum ok", node: `{"type":"integer","minimum":1}`, val: 1.0},
		{name: "minimum violated", node: `{"type":"integer","minimum":1}`, val: 0.0, wantErr: true},
		{name: "required missing", node: `{"type":"object","required":["a"]}`, val: map[string]any{"b": 1.0}, wantErr: true},
		{name: "nested property", node: `{"type":"object","properties":{"a":{"type":"boolean"}}}`,
			val: map[string]any{"a": "yes"}, wantErr: true},
		{name: "array items", node: `{"type":"array","items":{"type":"string"}}`, val: []any{"a", 1.0}, wantErr: true},
		{name: "null array min items", node: `{"type":"array","minItems":1}`, val: nil, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var node map[string]any
			require.NoError(t, json.Unmarshal([]byte(tt.node), &node))
			err := checkNode(doc, node, tt.val, "v")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateRequiredFields(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, validateRequiredFields(cfg))

	cfg.Boards = append(cfg.Boards, Board{ID: "x"})
	require.Error(t, validateRequiredFields(cfg))

	cfg = validConfig()
	cfg.Extraction.Enabled = true
	cfg.Extraction.Timeout = 0
	require.Error(t, validateRequiredFields(cfg))

	cfg.Extraction.Timeout = time.Second
	require.NoError(t, validateRequiredFields(cfg))
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)

	data, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.Contains(t, string(data), "boards")
	assert.Contains(t, string(data), "full_scan")
	assert.Contains(t, string(data), "credentials_file")
}

func TestEmbeddedSchema_MatchesConfig(t *testing.T) {
	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(embeddedSchema), &schema))
	defs, ok := schema["$defs"].(map[string]any)
	require.True(t, ok)
	for _, name := range []string{"Config", "Board", "CrawlerConfig", "PushConfig", "ExtractionConfig"} {
		assert.Contains(t, defs, name)
	}
}
