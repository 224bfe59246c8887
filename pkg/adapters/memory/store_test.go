package memory_test

import (
	"testing"

	"github.com/aretw0/extrude/pkg/adapters/memory"
	"github.com/aretw0/extrude/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunResultStoreContract(t, store)
}
