package pets

import "context"

// OwnerOf expone el shelter dueño de una mascota.
// Lo consumen applications y el router sin acoplar esos módulos al modelo Pet.
func (s *Service) OwnerOf(ctx context.Context, petID string) (string, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return "", err
	}
	return p.OwnerUserID, nil
}
