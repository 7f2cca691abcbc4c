package store

import (
	"crypto/sha256"
	"encoding/base64"
	"sync"
	"time"

	"github.com/amancoderhub/EMS-Event-management-System/models"
	aws_pkg "github.com/amancoderhub/EMS-Event-management-System/pkg/aws"
	"github.com/amancoderhub/EMS-Event-management-System/preferences"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// State is a point-in-time copy of everything the Store owns.
type State struct {
	Users       []models.User        `json:"users"`
	Vendors     []models.Vendor      `json:"vendors"`
	Admins      []models.Admin       `json:"-"`
	Cart        []models.CartLine    `json:"cart"`
	Orders      []models.Order       `json:"orders"`
	Memberships []models.Membership  `json:"memberships"`
	Requests    []models.ItemRequest `json:"requests"`
	Guests      []models.Guest       `json:"guests"`
	Session     *models.Session      `json:"session"`
	Theme       models.Theme         `json:"theme"`
}

// Deps are the Store's collaborators. Every field is optional.
type Deps struct {
	Preferences   preferences.Store
	Publisher     aws_pkg.SNSPublisher
	OrderTopicARN string
	Logger        *zap.Logger
	BcryptCost    int
	Clock         func() time.Time
}

// Store is the single owner of all domain data and the active session.
// It is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	state  State
	lastID int64

	// themeMu serialises toggle+persist so writes reach the preference
	// store in the same order they were applied.
	themeMu sync.Mutex

	prefs     preferences.Store
	publisher aws_pkg.SNSPublisher
	topicArn  string
	logger    *zap.Logger
	cost      int
	now       func() time.Time
}

// New builds a Store holding the seed data.
func New(deps Deps) *Store {
	s := &Store{
		prefs:     deps.Preferences,
		publisher: deps.Publisher,
		topicArn:  deps.OrderTopicARN,
		logger:    deps.Logger,
		cost:      deps.BcryptCost,
		now:       deps.Clock,
	}
	if s.prefs == nil {
		s.prefs = preferences.NewMemoryStore()
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.cost < bcrypt.MinCost || s.cost > bcrypt.MaxCost {
		s.cost = bcrypt.DefaultCost
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.state = s.seed()
	return s
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return State{
		Users:       append([]models.User{}, s.state.Users...),
		Vendors:     cloneVendors(s.state.Vendors),
		Admins:      append([]models.Admin{}, s.state.Admins...),
		Cart:        append([]models.CartLine{}, s.state.Cart...),
		Orders:      cloneOrders(s.state.Orders),
		Memberships: append([]models.Membership{}, s.state.Memberships...),
		Requests:    append([]models.ItemRequest{}, s.state.Requests...),
		Guests:      append([]models.Guest{}, s.state.Guests...),
		Session:     cloneSession(s.state.Session),
		Theme:       s.state.Theme,
	}
}

// nextIDLocked hands out time-based ids that strictly increase even when the
// clock does not move between calls. Callers hold s.mu for writing.
func (s *Store) nextIDLocked() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// prehash digests the password so bcrypt never sees more than 72 bytes.
func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

func (s *Store) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(prehash(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), prehash(password)) == nil
}

func cloneVendor(v models.Vendor) models.Vendor {
	v.Products = append([]models.Product{}, v.Products...)
	return v
}

func cloneVendors(in []models.Vendor) []models.Vendor {
	out := make([]models.Vendor, len(in))
	for i, v := range in {
		out[i] = cloneVendor(v)
	}
	return out
}

func cloneOrder(o models.Order) models.Order {
	o.Items = append([]models.CartLine{}, o.Items...)
	return o
}

func cloneOrders(in []models.Order) []models.Order {
	out := make([]models.Order, len(in))
	for i, o := range in {
		out[i] = cloneOrder(o)
	}
	return out
}

func cloneSession(sess *models.Session) *models.Session {
	if sess == nil {
		return nil
	}
	c := *sess
	return &c
}
