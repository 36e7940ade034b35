package store_test

import (
	"errors"
	"testing"

	"naclsafe"
	"naclsafe/internal/keyring"
	"naclsafe/internal/store"
)

func testKeyring() keyring.Keyring {
	var boxSeed, signSeed naclsafe.Seed
	boxSeed[0], signSeed[0] = 1, 2
	return keyring.FromSeeds(boxSeed, signSeed)
}

func TestKeyring_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()
	pass := "pass"

	var ks store.KeyringStore = store.NewFileStore(home)

	kr := testKeyring()
	if err := ks.Save(pass, kr); err != nil {
		t.Fatalf("save keyring: %v", err)
	}

	got, err := ks.Load(pass)
	if err != nil {
		t.Fatalf("load keyring: %v", err)
	}
	if got != kr {
		t.Fatalf("mismatch after load")
	}
}

func TestKeyring_WrongPassphrase_Fails(t *testing.T) {
	home := t.TempDir()
	var ks store.KeyringStore = store.NewFileStore(home)

	if err := ks.Save("correct", testKeyring()); err != nil {
		t.Fatalf("save keyring: %v", err)
	}
	_, err := ks.Load("wrong")
	if !errors.Is(err, store.ErrWrongPassphrase) {
		t.Fatalf("load with wrong passphrase: %v, want ErrWrongPassphrase", err)
	}
}

func TestKeyring_Load_Missing(t *testing.T) {
	var ks store.KeyringStore = store.NewFileStore(t.TempDir())
	if _, err := ks.Load("pass"); err == nil {
		t.Fatal("expected error loading missing keyring")
	}
}

func TestKeyring_Save_Overwrites(t *testing.T) {
	home := t.TempDir()
	ks := store.NewFileStore(home)

	first := testKeyring()
	if err := ks.Save("pass", first); err != nil {
		t.Fatalf("save: %v", err)
	}

	var boxSeed, signSeed naclsafe.Seed
	boxSeed[0], signSeed[0] = 3, 4
	second := keyring.FromSeeds(boxSeed, signSeed)
	if err := ks.Save("pass", second); err != nil {
		t.Fatalf("save again: %v", err)
	}

	got, err := ks.Load("pass")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != second {
		t.Fatal("overwrite did not take effect")
	}
}
