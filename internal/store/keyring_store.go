package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"naclsafe/internal/keyring"
	"naclsafe/internal/util/memzero"
)

const keyringFilename = "keyring.json.enc"

// KeyringStore persists a keyring under a passphrase.
type KeyringStore interface {
	Save(passphrase string, kr keyring.Keyring) error
	Load(passphrase string) (keyring.Keyring, error)
}

// FileStore persists the keyring to a file under dir.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore returns a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Save writes the encrypted keyring to disk.
func (s *FileStore) Save(passphrase string, kr keyring.Keyring) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(kr)
	if err != nil {
		return err
	}
	defer memzero.Zero(raw)

	N, r, p := scryptParamsDefault()
	ct, err := encrypt(passphrase, raw, N, r, p)
	if err != nil {
		return err
	}
	return writeFileAtomic(filepath.Join(s.dir, keyringFilename), ct, 0o600)
}

// Load reads and decrypts the keyring.
func (s *FileStore) Load(passphrase string) (keyring.Keyring, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(filepath.Join(s.dir, keyringFilename))
	if err != nil {
		return keyring.Keyring{}, err
	}
	pt, err := decrypt(passphrase, b)
	if err != nil {
		return keyring.Keyring{}, err
	}
	defer memzero.Zero(pt)

	var kr keyring.Keyring
	if err := json.Unmarshal(pt, &kr); err != nil {
		return keyring.Keyring{}, err
	}
	return kr, nil
}

// Compile-time assertion that FileStore implements KeyringStore.
var _ KeyringStore = (*FileStore)(nil)
