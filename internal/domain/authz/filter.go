package authz

import "fmt"

// AllowedTiers returns the named document tiers a role may see in listings.
// The named sets narrow as the role rises; board accounts are unrestricted
// regardless of the named set because tiers are minimum-role labels and the
// board outranks them all.
func AllowedTiers(role Role) []AccessLevel {
	switch role {
	case RoleEmployee:
		return []AccessLevel{LevelEmployee, LevelManager, LevelHR, LevelBoard}
	case RoleManager:
		return []AccessLevel{LevelManager, LevelHR, LevelBoard}
	case RoleHR:
		return []AccessLevel{LevelHR, LevelBoard}
	case RoleBoard:
		return []AccessLevel{LevelEmployee, LevelManager, LevelHR, LevelBoard}
	}
	return nil
}

// Predicate restricts a list query. Zero value matches everything; MatchNone
// matches nothing and is produced when an own-records-only role has no
// employee link to scope by.
type Predicate struct {
	OwnerEmployeeID string
	Tiers           []AccessLevel
	MatchNone       bool
}

// BuildFilterPredicate produces the list filter for a principal and kind. It
// intersects the tier filter (tiered kinds only) with an ownership clause for
// roles whose read grant is own-records-only. Employees listing documents are
// always scoped to their own rows even though their named tier set is wide.
func BuildFilterPredicate(p Principal, kind Kind) Predicate {
	pred := Predicate{}
	if kind.Tiered() && p.Role != RoleBoard {
		pred.Tiers = AllowedTiers(p.Role)
	}
	if grantFor(kind, p.Role, ActionRead) == ScopeOwn {
		if p.EmployeeID == "" {
			pred.MatchNone = true
		} else {
			pred.OwnerEmployeeID = p.EmployeeID
		}
	}
	return pred
}

// SQL renders the predicate as a WHERE-clause fragment with positional
// arguments starting at argIndex, suitable for appending to a pgx query. The
// fragment is empty for an unrestricted predicate.
func (pred Predicate) SQL(ownerColumn, tierColumn string, argIndex int) (string, []any) {
	if pred.MatchNone {
		return " AND false", nil
	}
	clause := ""
	var args []any
	if pred.OwnerEmployeeID != "" {
		clause += fmt.Sprintf(" AND %s = $%d", ownerColumn, argIndex)
		args = append(args, pred.OwnerEmployeeID)
		argIndex++
	}
	if len(pred.Tiers) > 0 {
		clause += fmt.Sprintf(" AND %s = ANY($%d)", tierColumn, argIndex)
		tiers := make([]string, len(pred.Tiers))
		for i, tier := range pred.Tiers {
			tiers[i] = string(tier)
		}
		args = append(args, tiers)
	}
	return clause, args
}

// Matches evaluates the predicate against one record in memory.
func (pred Predicate) Matches(ownerEmployeeID string, level AccessLevel) bool {
	if pred.MatchNone {
		return false
	}
	if pred.OwnerEmployeeID != "" && ownerEmployeeID != pred.OwnerEmployeeID {
		return false
	}
	if len(pred.Tiers) > 0 {
		if !level.Valid() {
			level = LevelEmployee
		}
		for _, tier := range pred.Tiers {
			if tier == level {
				return true
			}
		}
		return false
	}
	return true
}
