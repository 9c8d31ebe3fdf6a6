// Package session maneja la sesión del usuario: el token bearer, el usuario
// derivado y el guard de rutas protegidas.
//
// El token vive solo en memoria: muere con el proceso, no se escribe a
// disco ni se comparte entre procesos.
package session

import "sync"

// Usuario identidad mostrada en la consola. No se deriva realmente del
// backend: cualquier token presente resuelve a un usuario autenticado.
type Usuario struct {
	Username string
}

// Store estado de sesión: token opaco + usuario derivado.
// Se pasa por referencia a quien lo necesita (api.Client, guard, CLI);
// no hay acceso ambiente/global.
type Store struct {
	mu      sync.Mutex
	token   string
	usuario *Usuario
}

// NewStore crea una sesión vacía (no autenticada).
func NewStore() *Store {
	return &Store{}
}

// Token devuelve el bearer token actual, o "" si no hay sesión.
// Implementa api.TokenSource.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Clear descarta el token y el usuario. Implementa api.TokenSource.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.usuario = nil
}

// Set guarda el token y el usuario derivado de él.
func (s *Store) Set(token string, u *Usuario) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.usuario = u
}

// Usuario devuelve el usuario actual, o nil si no hay sesión.
func (s *Store) Usuario() *Usuario {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.usuario
}

// IsAuthenticated indica si hay token presente.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}
