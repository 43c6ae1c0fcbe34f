package availability

import "shelterhub/models"

// FilterEligible narrows the requested volunteer IDs to those the pet's
// allow-list admits, preserving request order and dropping duplicates. A nil
// pet means no restriction applies.
func FilterEligible(requested []string, pet *models.Pet) []string {
	seen := make(map[string]struct{}, len(requested))
	eligible := make([]string, 0, len(requested))
	for _, id := range requested {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if pet != nil && !pet.AllowsVolunteer(id) {
			continue
		}
		eligible = append(eligible, id)
	}
	return eligible
}
