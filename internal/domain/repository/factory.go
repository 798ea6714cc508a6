package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Offers() OfferRepository
	Orders() OrderRepository
	Reviews() ReviewRepository
	Stats() StatsRepository
}
