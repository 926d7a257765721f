package gitclient

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanWorkspace(t *testing.T) {

	t.Run("RemovesExistingContentAndRecreatesDirectory", func(t *testing.T) {

		client, _ := NewClient(context.Background())

		dir := t.TempDir()
		err := ioutil.WriteFile(filepath.Join(dir, "stale"), []byte("leftover"), 0644)
		assert.Nil(t, err)

		// act
		err = client.CleanWorkspace(dir)

		assert.Nil(t, err)
		entries, err := ioutil.ReadDir(dir)
		assert.Nil(t, err)
		assert.Equal(t, 0, len(entries))
	})

	t.Run("CreatesDirectoryWhenItDoesNotExist", func(t *testing.T) {

		client, _ := NewClient(context.Background())

		dir := filepath.Join(t.TempDir(), "workspace")

		// act
		err := client.CleanWorkspace(dir)

		assert.Nil(t, err)
		info, err := os.Stat(dir)
		assert.Nil(t, err)
		assert.True(t, info.IsDir())
	})
}

func TestIsChangeRef(t *testing.T) {

	t.Run("ReturnsTrueForGerritChangeRef", func(t *testing.T) {

		assert.True(t, isChangeRef("refs/changes/12/1234/3"))
	})

	t.Run("ReturnsFalseForBranchName", func(t *testing.T) {

		assert.False(t, isChangeRef("master"))
	})
}
