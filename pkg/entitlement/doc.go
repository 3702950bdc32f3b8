// Package entitlement decides which subscription tier unlocks which protected
// feature and holds the tier of a session.
//
// The package has four parts:
//
//   - Tier and Feature: closed sets of identifiers. ParseTier and ParseFeature
//     reject anything outside them with ErrInvalidTierKind and ErrInvalidFeatureKind.
//   - HasAccess: the access rule. Free never has access, basic and pro unlock every
//     protected feature. Unknown values are errors, never decisions.
//   - State: a session scoped holder of the current tier with a subscribe/notify
//     contract. Every SetTier notifies all listeners synchronously, in registration
//     order, even when the tier did not change.
//   - Catalog: the static list of purchasable plans with display metadata, loaded
//     from YAML (DefaultCatalog embeds the built-in Basic and Pro plans).
//
// # Usage
//
//	state := entitlement.NewState()
//	unsubscribe := state.Subscribe(func(c entitlement.Change) {
//		log.Info("plan changed", logger.Tier(c.To))
//	})
//	defer unsubscribe()
//
//	ok, err := entitlement.HasAccess(state.Tier(), entitlement.FeatureResumeReport)
//	if err != nil {
//		// programming error: unknown feature or tier
//	}
//
//	_ = state.SetTier(entitlement.TierBasic)
//
// There is no global state. Construct one State per session and pass it to
// whatever needs it.
package entitlement
