package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Sweets() SweetRepository
	Orders() OrderRepository
	Reviews() ReviewRepository
	Contacts() ContactRepository
}
