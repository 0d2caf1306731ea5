package authz

// Decision is the outcome of one authorization check. Exactly one of the
// allow and deny shapes applies: a denied decision carries a reason, a
// list allow carries a filter, and a create allow may carry a forced tier.
type Decision struct {
	Allowed bool
	Reason  ErrorKind
	Filter  *Predicate
	// ForcedTier is set when a create is allowed but the caller must coerce
	// the record's access level (non-HR, non-board document creators).
	ForcedTier AccessLevel
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason ErrorKind) Decision {
	return Decision{Reason: reason}
}

func AllowFiltered(pred Predicate) Decision {
	return Decision{Allowed: true, Filter: &pred}
}

// Decide is the single entry point for resource authorization. Callers build
// the resource descriptor from data they already hold and consult Decide
// before any storage operation. The function is pure and never errors; denial
// reasons travel inside the decision.
//
// Ordering: guests are rejected outright, then the row-level grant is looked
// up, then ownership is resolved. A principal acting on its own record takes
// the self-service path; acting beyond its own records additionally requires
// the coarse module gate and an all-records grant.
func Decide(p Principal, res Resource, action Action) Decision {
	if !p.Role.Valid() {
		return Deny(ErrorUnauthenticated)
	}
	if p.Role == RoleGuest {
		return Deny(ErrorForbidden)
	}

	if action == ActionList {
		return decideList(p, res.Kind)
	}

	scope := grantFor(res.Kind, p.Role, action)
	if scope == ScopeNone {
		return Deny(ErrorForbidden)
	}

	switch scope {
	case ScopeOwn:
		if action == ActionCreate {
			// Creating an own-scoped record: the principal needs an employee
			// link and the record, if already attributed, must be theirs.
			if p.EmployeeID == "" || (res.OwnerEmployeeID != "" && res.OwnerEmployeeID != p.EmployeeID) {
				return Deny(ErrorForbidden)
			}
		} else if !IsOwner(p, res.OwnerEmployeeID) {
			return Deny(ErrorForbidden)
		}
	case ScopeAll:
		if !IsOwner(p, res.OwnerEmployeeID) {
			if res.OwnerEmployeeID != "" && !HasElevatedAccess(p.Role, res.Kind) {
				return Deny(ErrorForbidden)
			}
			if denied := moduleGate(p.Role, res.Kind); denied != nil {
				return *denied
			}
		}
	}

	if res.Kind == KindDocument && action == ActionCreate && p.Role != RoleHR && p.Role != RoleBoard {
		decision := Allow()
		decision.ForcedTier = LevelEmployee
		return decision
	}
	return Allow()
}

func decideList(p Principal, kind Kind) Decision {
	scope := grantFor(kind, p.Role, ActionRead)
	if scope == ScopeNone {
		return Deny(ErrorForbidden)
	}
	if scope == ScopeAll {
		if denied := moduleGate(p.Role, kind); denied != nil {
			return *denied
		}
	}
	return AllowFiltered(BuildFilterPredicate(p, kind))
}

func moduleGate(role Role, kind Kind) *Decision {
	module, gated := ModuleOf(kind)
	if !gated {
		return nil
	}
	if !CanAccessModule(role, module) {
		denied := Deny(ErrorForbidden)
		return &denied
	}
	return nil
}
