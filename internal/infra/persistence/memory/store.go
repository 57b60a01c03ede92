// Package memory is the in-process storage driver. It backs local runs with
// storage.driver=memory and the scenario tests of the usecases.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"addresssync/internal/domain/entity"
	"addresssync/internal/domain/repository"
)

// Store keeps addresses, user links and the email queue in maps guarded by one lock.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	nextAddressID int64
	nextQueueID   int64
	addresses     map[int64]*entity.AddressRecord
	links         []*entity.UserAddressLink
	queue         map[entity.QueueKey]*entity.EmailQueueEntry
	queueOrder    []entity.QueueKey

	now func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		addresses: make(map[int64]*entity.AddressRecord),
		queue:     make(map[entity.QueueKey]*entity.EmailQueueEntry),
		now:       time.Now,
	}
}

// Addresses returns the address repository view of the store.
func (s *Store) Addresses() repository.AddressRepository {
	return &addressRepository{store: s}
}

// UserAddresses returns the user link repository view of the store.
func (s *Store) UserAddresses() repository.UserAddressRepository {
	return &userAddressRepository{store: s}
}

// EmailQueue returns the email queue repository view of the store.
func (s *Store) EmailQueue() repository.EmailQueueRepository {
	return &emailQueueRepository{store: s}
}

// TransactionManager returns a manager that serializes transactions and, when
// the callback fails, restores only the address rows the transaction wrote.
func (s *Store) TransactionManager() repository.TransactionManager {
	return &transactionManager{store: s}
}

// LinkUser records a user to address link. Links are owned by the account
// service; the store exposes this for seeding only.
func (s *Store) LinkUser(link entity.UserAddressLink) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.links = append(s.links, &link)
}

// QueueEntries returns copies of the queued entries in insertion order.
func (s *Store) QueueEntries() []*entity.EmailQueueEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*entity.EmailQueueEntry, 0, len(s.queueOrder))
	for _, key := range s.queueOrder {
		entry := *s.queue[key]
		entries = append(entries, &entry)
	}

	return entries
}

// AllAddresses returns copies of every address ordered by ID.
func (s *Store) AllAddresses() []*entity.AddressRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sortedAddressesLocked(func(*entity.AddressRecord) bool { return true })
}

func (s *Store) sortedAddressesLocked(match func(*entity.AddressRecord) bool) []*entity.AddressRecord {
	result := make([]*entity.AddressRecord, 0)
	for _, record := range s.addresses {
		if match(record) {
			result = append(result, cloneAddress(record))
		}
	}
	slices.SortFunc(result, func(a, b *entity.AddressRecord) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})

	return result
}

func cloneAddress(record *entity.AddressRecord) *entity.AddressRecord {
	clone := *record
	if record.VendorToken != nil {
		token := *record.VendorToken
		clone.VendorToken = &token
	}
	if record.VendorID != nil {
		vendorID := *record.VendorID
		clone.VendorID = &vendorID
	}

	return &clone
}

type addressRepository struct {
	store *Store
	// journal is set for repositories handed out inside a transaction.
	journal txJournal
}

// txJournal maps each address a transaction wrote to its pre-image.
// A nil pre-image marks a record the transaction created.
type txJournal map[int64]*entity.AddressRecord

func (r *addressRepository) CreateAddress(_ context.Context, address *entity.AddressRecord) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextAddressID++
	now := s.now()
	address.ID = s.nextAddressID
	address.CreatedAt = now
	address.UpdatedAt = now
	s.addresses[address.ID] = cloneAddress(address)
	if r.journal != nil {
		r.journal[address.ID] = nil
	}

	return nil
}

func (r *addressRepository) FindAddressByID(_ context.Context, id int64) (*entity.AddressRecord, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.addresses[id]
	if !ok {
		return nil, repository.ErrAddressNotFound
	}

	return cloneAddress(record), nil
}

func (r *addressRepository) FindAddressesByVendorToken(_ context.Context, vendorToken string) ([]*entity.AddressRecord, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sortedAddressesLocked(func(record *entity.AddressRecord) bool {
		return record.VendorToken != nil && *record.VendorToken == vendorToken
	}), nil
}

func (r *addressRepository) FindFirstAddressByText(_ context.Context, normalizedText string) (*entity.AddressRecord, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := s.sortedAddressesLocked(func(record *entity.AddressRecord) bool {
		return entity.NormalizeAddressText(record.AddressText) == normalizedText
	})
	if len(matches) == 0 {
		return nil, repository.ErrAddressNotFound
	}

	return matches[0], nil
}

func (r *addressRepository) UpdateAddressFields(_ context.Context, id int64, update entity.AddressUpdate) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.addresses[id]
	if !ok {
		return repository.ErrAddressNotFound
	}
	if update.IsEmpty() {
		return nil
	}

	if r.journal != nil {
		if _, seen := r.journal[id]; !seen {
			r.journal[id] = cloneAddress(record)
		}
	}
	update.Apply(record)
	record.UpdatedAt = s.now()

	return nil
}

type userAddressRepository struct {
	store *Store
}

func (r *userAddressRepository) FindLinksByAddressAndTier(_ context.Context, addressID int64, tier entity.PrivacyTier) ([]*entity.UserAddressLink, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	links := make([]*entity.UserAddressLink, 0)
	for _, link := range s.links {
		if link.AddressID == addressID && link.PrivacyTier == tier {
			clone := *link
			links = append(links, &clone)
		}
	}

	return links, nil
}

type emailQueueRepository struct {
	store *Store
}

func (r *emailQueueRepository) ExistsByKey(_ context.Context, key entity.QueueKey) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.queue[key]

	return ok, nil
}

func (r *emailQueueRepository) InsertEntry(_ context.Context, entry *entity.EmailQueueEntry) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	key := entry.Key()
	if _, ok := s.queue[key]; ok {
		return repository.ErrQueueEntryExists
	}

	s.nextQueueID++
	entry.ID = s.nextQueueID
	entry.IsEmailSent = false
	entry.CreatedAt = s.now()

	stored := *entry
	s.queue[key] = &stored
	s.queueOrder = append(s.queueOrder, key)

	return nil
}

type transactionManager struct {
	store *Store
}

type repositoryFactory struct {
	store   *Store
	journal txJournal
}

func (f *repositoryFactory) NewAddressRepository() repository.AddressRepository {
	return &addressRepository{store: f.store, journal: f.journal}
}

func (tm *transactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	s := tm.store
	s.txMu.Lock()
	defer s.txMu.Unlock()

	journal := make(txJournal)
	if err := fn(&repositoryFactory{store: s, journal: journal}); err != nil {
		s.rollback(journal)

		return err
	}

	return nil
}

// rollback puts back the pre-images in journal. Rows the transaction never
// wrote keep whatever concurrent writers stored meanwhile.
func (s *Store) rollback(journal txJournal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, before := range journal {
		if before == nil {
			delete(s.addresses, id)

			continue
		}
		s.addresses[id] = before
	}
}
