// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestSessionIDCtxKey(t *testing.T) {
	if SessionIDCtxKey.String() != "sessionID" {
		t.Errorf("expected 'sessionID', got '%s'", SessionIDCtxKey.String())
	}
}

func TestGetSessionIDFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionIDCtxKey, "session-42")

	sessionID, ok := GetSessionIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if sessionID != "session-42" {
		t.Errorf("expected sessionID=session-42, got %s", sessionID)
	}
}

func TestGetSessionIDFromContext_Missing(t *testing.T) {
	sessionID, ok := GetSessionIDFromContext(context.Background())

	if ok {
		t.Error("expected ok=false for missing session id")
	}
	if sessionID != "" {
		t.Errorf("expected empty session id, got %s", sessionID)
	}
}

func TestGetSessionIDFromContext_Empty(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionIDCtxKey, "")

	if _, ok := GetSessionIDFromContext(ctx); ok {
		t.Error("expected ok=false for empty session id")
	}
}

func TestGetSessionIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionIDCtxKey, 42)

	if _, ok := GetSessionIDFromContext(ctx); ok {
		t.Error("expected ok=false for non-string value")
	}
}

func TestGetSessionIDFromContext_PlainStringKeyIsIgnored(t *testing.T) {
	//nolint:staticcheck // plain string key on purpose
	ctx := context.WithValue(context.Background(), "sessionID", "session-42")

	if _, ok := GetSessionIDFromContext(ctx); ok {
		t.Error("a plain string key must not collide with SessionIDCtxKey")
	}
}
