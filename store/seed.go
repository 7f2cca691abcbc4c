package store

import "github.com/amancoderhub/EMS-Event-management-System/models"

type seedVendor struct {
	vendor   models.Vendor
	password string
}

func (s *Store) seed() State {
	vendors := []seedVendor{
		{password: "vendor123", vendor: models.Vendor{
			ID: 1, Name: "Golden Fork Catering", Email: "vendor@ems.com",
			Category: "Catering", Contact: "+91 9876543210", Desc: "Premium catering for all events",
			Products: []models.Product{
				{ID: 1, Name: "Veg Thali", Price: 350, Emoji: "🍱"},
				{ID: 2, Name: "BBQ Platter", Price: 650, Emoji: "🍖"},
				{ID: 3, Name: "Dessert Buffet", Price: 450, Emoji: "🍰"},
				{ID: 4, Name: "Welcome Drinks", Price: 200, Emoji: "🥤"},
			},
		}},
		{password: "bloom123", vendor: models.Vendor{
			ID: 2, Name: "Bloom Florists", Email: "bloom@ems.com",
			Category: "Florist", Contact: "+91 9988776655", Desc: "Exquisite floral arrangements",
			Products: []models.Product{
				{ID: 5, Name: "Rose Centrepiece", Price: 1200, Emoji: "🌹"},
				{ID: 6, Name: "Stage Arch", Price: 4500, Emoji: "🌸"},
				{ID: 7, Name: "Table Bouquet", Price: 800, Emoji: "💐"},
				{ID: 8, Name: "Entry Garland", Price: 2200, Emoji: "🌺"},
			},
		}},
		{password: "glitter123", vendor: models.Vendor{
			ID: 3, Name: "Glitter Decorations", Email: "glitter@ems.com",
			Category: "Decoration", Contact: "+91 9123456789", Desc: "Stunning event décor & themes",
			Products: []models.Product{
				{ID: 9, Name: "Balloon Wall", Price: 3500, Emoji: "🎈"},
				{ID: 10, Name: "LED Backdrop", Price: 8000, Emoji: "✨"},
				{ID: 11, Name: "Chair Covers", Price: 60, Emoji: "🪑"},
				{ID: 12, Name: "Themed Setup", Price: 15000, Emoji: "🎪"},
			},
		}},
		{password: "lumi123", vendor: models.Vendor{
			ID: 4, Name: "Luminary Lighting", Email: "lumi@ems.com",
			Category: "Lighting", Contact: "+91 9001122334", Desc: "Professional lighting solutions",
			Products: []models.Product{
				{ID: 13, Name: "Fairy Lights", Price: 1500, Emoji: "💡"},
				{ID: 14, Name: "Laser Show", Price: 12000, Emoji: "🔦"},
				{ID: 15, Name: "Wash Lights", Price: 5000, Emoji: "🌟"},
				{ID: 16, Name: "Candle Setup", Price: 2800, Emoji: "🕯️"},
			},
		}},
	}

	st := State{
		Users: []models.User{
			{ID: 1, Name: "Alice", Email: "user@ems.com", Password: s.mustHash("user123"), Role: models.RoleUser},
		},
		Admins: []models.Admin{
			{ID: 1, Email: "admin@ems.com", Password: s.mustHash("admin123")},
		},
		Guests: []models.Guest{
			{ID: 1, Name: "Rahul Sharma", Email: "rahul@mail.com", RSVP: models.RSVPConfirmed, Table: "T1"},
			{ID: 2, Name: "Priya Nair", Email: "priya@mail.com", RSVP: models.RSVPPending, Table: "T2"},
		},
		Cart:        []models.CartLine{},
		Orders:      []models.Order{},
		Memberships: []models.Membership{},
		Requests:    []models.ItemRequest{},
		Theme:       models.ThemeDark,
	}
	for _, sv := range vendors {
		v := sv.vendor
		v.Password = s.mustHash(sv.password)
		st.Vendors = append(st.Vendors, v)
	}
	return st
}

func (s *Store) mustHash(password string) string {
	hash, err := s.hashPassword(password)
	if err != nil {
		panic("store: hashing seed password: " + err.Error())
	}
	return hash
}
