package application

// MockUserService answers owner-existence checks from a fixed set of IDs.
type MockUserService struct {
	ExistingUsers map[int64]bool
	Calls         int
}

func (m *MockUserService) DoesUserExist(userID int64) (bool, error) {
	m.Calls++
	return m.ExistingUsers[userID], nil
}
