// Copyright (c) 2025-2026 Prepwise
// Author: Prepwise Engineering <engineering@prepwise.app>
//
// Licensed under the MIT License.
// See LICENSE.md for details.

package ui_api

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "coach_session"

// uiSession mirrors the browser's view of one interview: the latest question
// and coaching output plus synthesized audio keyed by kind. Interview state
// itself lives behind the coach-api; this is display state only.
type uiSession struct {
	mu         sync.Mutex
	SessionId  string
	Round      int
	MaxRounds  int
	Question   string
	Transcript string
	Evaluation string
	Feedback   string
	Summary    string
	Done       bool
	Started    bool
	audio      map[string][]byte
}

type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*uiSession
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*uiSession)}
}

// resolve returns the session bound to the request cookie, minting a new
// cookie and session when none exists yet.
func (s *sessionStore) resolve(c *gin.Context) *uiSession {
	key, err := c.Cookie(sessionCookie)
	if err != nil || key == "" {
		key = uuid.New().String()
		c.SetCookie(sessionCookie, key, 86400, "/", "", false, true)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[key]
	if !ok {
		sess = &uiSession{
			SessionId: key,
			audio:     make(map[string][]byte),
		}
		s.sessions[key] = sess
	}
	return sess
}

func (s *sessionStore) drop(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, key)
}

func (sess *uiSession) setAudio(kind string, data []byte) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.audio[kind] = data
}

func (sess *uiSession) getAudio(kind string) ([]byte, bool) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	data, ok := sess.audio[kind]
	return data, ok
}
