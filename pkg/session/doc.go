// Package session provides anonymous, in-memory browser sessions.
//
// A Manager issues a random token in an HttpOnly cookie and maps it to a
// Session with a stable uuid ID. Sessions expire after an idle timeout; each
// request older than ActivityUpdateThreshold pushes the expiry forward.
// MemoryStore runs a sweeper and calls its ExpireFunc hooks for every removed
// session so that session scoped state held elsewhere can be released.
//
//	store := session.NewMemoryStore(cfg.CleanupInterval, func(s session.Session) {
//		registry.Forget(s.ID)
//	})
//	mgr := session.NewFromConfig(cfg, session.WithStore(store))
//	r.Use(mgr.Middleware)
//
// Handlers read the session with session.FromContext or MustFromContext.
package session
