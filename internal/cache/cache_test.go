package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type MockRedisClient struct {
	Store    map[string]string
	LastTTL  time.Duration
	GetError error
}

func (m *MockRedisClient) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx, "get", key)
	if m.GetError != nil {
		cmd.SetErr(m.GetError)
		return cmd
	}
	v, ok := m.Store[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(v)
	return cmd
}

func (m *MockRedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx, "set", key, value)
	m.LastTTL = expiration
	switch v := value.(type) {
	case []byte:
		m.Store[key] = string(v)
	case string:
		m.Store[key] = v
	}
	cmd.SetVal("OK")
	return cmd
}

func TestKey(t *testing.T) {
	tests := []struct {
		name  string
		fp    string
		view  string
		parts []string
		want  string
	}{
		{"No Parts", "abc", "options", nil, "vct:view:abc:options"},
		{"With Parts", "abc", "overview", []string{"2", "Masters Madrid"}, "vct:view:abc:overview:2:Masters Madrid"},
		{"Escapes Separator", "abc", "team", []string{"Kills:Deaths"}, `vct:view:abc:team:Kills\:Deaths`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(tt.fp, tt.view, tt.parts...); got != tt.want {
				t.Errorf("Key = %q, want %q", got, tt.want)
			}
		})
	}

	if Key("a", "v", "x:y") == Key("a", "v", "x", "y") {
		t.Error("escaped part should not collide with two parts")
	}
}

func TestRedisCache(t *testing.T) {
	client := &MockRedisClient{Store: map[string]string{}}
	c := NewRedisCache(client, 10*time.Minute)
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "missing"); ok || err != nil {
		t.Fatalf("Get(missing) = %v, %v; want miss without error", ok, err)
	}

	if err := c.Set(ctx, "k", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if client.LastTTL != 10*time.Minute {
		t.Errorf("ttl = %v, want 10m", client.LastTTL)
	}

	got, ok, err := c.Get(ctx, "k")
	if err != nil || !ok || string(got) != `{"a":1}` {
		t.Errorf("Get(k) = %q, %v, %v", got, ok, err)
	}

	client.GetError = errors.New("connection reset")
	if _, _, err := c.Get(ctx, "k"); err == nil {
		t.Error("expected redis error to propagate")
	}
}

func TestLRUCache(t *testing.T) {
	c := NewLRUCache(2, time.Minute)
	ctx := context.Background()

	c.Set(ctx, "a", []byte("1"))
	c.Set(ctx, "b", []byte("2"))
	c.Set(ctx, "c", []byte("3"))

	if _, ok, _ := c.Get(ctx, "a"); ok {
		t.Error("oldest entry should be evicted")
	}
	if v, ok, _ := c.Get(ctx, "c"); !ok || string(v) != "3" {
		t.Errorf("Get(c) = %q, %v", v, ok)
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
}
