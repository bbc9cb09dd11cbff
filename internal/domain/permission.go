package domain

import "fmt"

// PermissionSet is a flattened set of collection permissions.
type PermissionSet map[CollectionPermission]struct{}

// Has reports whether the set contains p.
func (s PermissionSet) Has(p CollectionPermission) bool {
	_, ok := s[p]
	return ok
}

// Add inserts p into the set.
func (s PermissionSet) Add(p CollectionPermission) { s[p] = struct{}{} }

// Union adds every permission of other into the set.
func (s PermissionSet) Union(other PermissionSet) {
	for p := range other {
		s[p] = struct{}{}
	}
}

// groupDef declares what a permission group grants: direct permissions plus
// everything granted by lesser groups. The graph must be acyclic.
type groupDef struct {
	permissions []CollectionPermission
	includes    []PermissionGroup
}

var groupDefs = map[PermissionGroup]groupDef{
	PermissionGroupViewer: {
		permissions: []CollectionPermission{PermissionSeeCollection},
	},
	PermissionGroupPublisher: {
		permissions: []CollectionPermission{PermissionPublishTool, PermissionPublishWorkflow},
		includes:    []PermissionGroup{PermissionGroupViewer},
	},
	PermissionGroupAdmin: {
		permissions: []CollectionPermission{PermissionManageCollectionPerms, PermissionReviewSuggestions},
		includes:    []PermissionGroup{PermissionGroupPublisher},
	},
}

// groupClosure is the flattened group → permission-set table, computed once
// at package init instead of recursively at every permission check.
var groupClosure = buildGroupClosure()

// GroupPermissions returns the full permission set granted by a group.
// Unknown groups resolve to an empty set.
func GroupPermissions(g PermissionGroup) PermissionSet {
	set := make(PermissionSet, len(groupClosure[g]))
	set.Union(groupClosure[g])
	return set
}

// ResolvePermissions flattens a list of granted groups into one permission set.
func ResolvePermissions(groups []PermissionGroup) PermissionSet {
	set := make(PermissionSet)
	for _, g := range groups {
		set.Union(groupClosure[g])
	}
	return set
}

func buildGroupClosure() map[PermissionGroup]PermissionSet {
	closure := make(map[PermissionGroup]PermissionSet, len(groupDefs))
	for g := range groupDefs {
		closure[g] = flattenGroup(g, nil)
	}
	return closure
}

// flattenGroup expands a group into its full permission set. A cycle in the
// static definitions is a programmer error and panics at init.
func flattenGroup(g PermissionGroup, path []PermissionGroup) PermissionSet {
	for _, seen := range path {
		if seen == g {
			panic(fmt.Sprintf("permission group cycle: %v -> %s", path, g))
		}
	}

	def := groupDefs[g]
	set := make(PermissionSet, len(def.permissions))
	for _, p := range def.permissions {
		set.Add(p)
	}
	for _, inc := range def.includes {
		set.Union(flattenGroup(inc, append(path, g)))
	}
	return set
}
