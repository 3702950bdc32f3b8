// Package entitlement keeps the entitlement state of every live session.
//
// The registry hands out one *entitlement.State per session id and logs every
// tier selection made through it. Wire OnSessionExpire into the session store
// so states are released together with their sessions:
//
//	reg := entitlement.NewRegistry(entitlement.WithLogger(log))
//	store := session.NewMemoryStore(cfg.CleanupInterval, reg.OnSessionExpire)
package entitlement
