package simapro

import "github.com/ukaji3/simapro-go/pkg/simapro/models"

// Reconcile gathers the database and project parameters of all processes
// for a joint export. Identical definitions collapse into one; parameters
// named by an override are skipped and the overrides are added as given.
// Every name with two or more distinct definitions is reported together in
// one ParameterConflictError.
func Reconcile(processes []*models.Process, overrides []models.Parameter) (*models.ParameterSets, error) {
	overridden := make(map[string]bool, len(overrides))
	for _, o := range overrides {
		overridden[o.Base().Name] = true
	}

	var (
		unique []models.Parameter
		order  []string
		byName = make(map[string][]models.Parameter)
	)
	for _, p := range processes {
		for _, prm := range p.Parameters {
			base := prm.Base()
			if base.Level == models.LevelProcess || overridden[base.Name] {
				continue
			}
			if containsEqual(byName[base.Name], prm) {
				continue
			}
			if _, seen := byName[base.Name]; !seen {
				order = append(order, base.Name)
			}
			byName[base.Name] = append(byName[base.Name], prm)
			unique = append(unique, prm)
		}
	}

	var conflicts [][]models.Parameter
	for _, name := range order {
		if group := byName[name]; len(group) > 1 {
			conflicts = append(conflicts, group)
		}
	}
	if len(conflicts) > 0 {
		return nil, &ParameterConflictError{Conflicts: conflicts}
	}

	sets := &models.ParameterSets{}
	for _, prm := range unique {
		sets.Add(prm)
	}
	for _, o := range overrides {
		sets.Add(o)
	}
	return sets, nil
}

func containsEqual(group []models.Parameter, prm models.Parameter) bool {
	for _, g := range group {
		if g.Equal(prm) {
			return true
		}
	}
	return false
}
