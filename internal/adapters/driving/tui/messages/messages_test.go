package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernwood-labs/plank-cli/internal/core/domain"
)

// TestBundleLoaded tests the BundleLoaded message type
func TestBundleLoaded(t *testing.T) {
	t.Run("with bundle info", func(t *testing.T) {
		info := &domain.BundleInfo{
			Path: "nvim.txt",
			Documents: []domain.Document{
				{Path: "init.lua", Content: "require('core')\n"},
				{Path: "lua/core/options.lua", Content: "vim.opt.number = true\n"},
			},
			Metadata: map[string]string{domain.MetaKeyFileCount: "2"},
		}
		msg := BundleLoaded{Info: info, Err: nil}

		require.NotNil(t, msg.Info)
		assert.Equal(t, "nvim.txt", msg.Info.Path)
		assert.Len(t, msg.Info.Documents, 2)
		assert.NoError(t, msg.Err)
	})

	t.Run("with error", func(t *testing.T) {
		err := errors.New("bundle not found")
		msg := BundleLoaded{Info: nil, Err: err}

		assert.Nil(t, msg.Info)
		assert.Error(t, msg.Err)
		assert.Equal(t, "bundle not found", msg.Err.Error())
	})
}

// TestFileSelected tests the FileSelected message type
func TestFileSelected(t *testing.T) {
	t.Run("with valid document", func(t *testing.T) {
		doc := domain.Document{Path: "lua/plugins.lua", Content: "return {}\n"}
		msg := FileSelected{Document: doc}

		assert.Equal(t, "lua/plugins.lua", msg.Document.Path)
		assert.Equal(t, "return {}\n", msg.Document.Content)
	})

	t.Run("with empty document", func(t *testing.T) {
		msg := FileSelected{Document: domain.Document{}}
		assert.Equal(t, "", msg.Document.Path)
	})
}

// TestViewChanged tests the ViewChanged message type
func TestViewChanged(t *testing.T) {
	t.Run("to files view", func(t *testing.T) {
		msg := ViewChanged{View: ViewFiles}
		assert.Equal(t, ViewFiles, msg.View)
	})

	t.Run("to content view", func(t *testing.T) {
		msg := ViewChanged{View: ViewContent}
		assert.Equal(t, ViewContent, msg.View)
	})

	t.Run("to help view", func(t *testing.T) {
		msg := ViewChanged{View: ViewHelp}
		assert.Equal(t, ViewHelp, msg.View)
	})
}

// TestViewType_String tests all ViewType string representations
func TestViewType_String(t *testing.T) {
	tests := []struct {
		name     string
		view     ViewType
		expected string
	}{
		{"ViewFiles", ViewFiles, "files"},
		{"ViewContent", ViewContent, "content"},
		{"ViewHelp", ViewHelp, "help"},
		{"UnknownView", ViewType(99), "unknown"},
		{"NegativeView", ViewType(-1), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.view.String())
		})
	}
}

// TestErrorOccurred tests the ErrorOccurred message type
func TestErrorOccurred(t *testing.T) {
	t.Run("with standard error", func(t *testing.T) {
		err := errors.New("something went wrong")
		msg := ErrorOccurred{Err: err}

		assert.Error(t, msg.Err)
		assert.Equal(t, "something went wrong", msg.Err.Error())
	})

	t.Run("with nil error", func(t *testing.T) {
		msg := ErrorOccurred{Err: nil}
		assert.Nil(t, msg.Err)
	})
}

// TestReloadRequested tests the ReloadRequested message type
func TestReloadRequested(t *testing.T) {
	msg := ReloadRequested{}
	assert.NotNil(t, msg)
}

// TestQuit tests the Quit message type
func TestQuit(t *testing.T) {
	msg := Quit{}
	// Quit is an empty struct, just verify it can be created
	assert.NotNil(t, msg)
}
