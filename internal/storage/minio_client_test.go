package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectName(t *testing.T) {
	at := time.Date(2025, time.March, 7, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		fileName string
		wantExt  string
	}{
		{name: "keeps extension", fileName: "front.png", wantExt: ".png"},
		{name: "lowercases extension", fileName: "POOL.JPEG", wantExt: ".jpeg"},
		{name: "defaults to jpg", fileName: "blob", wantExt: ".jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name := ObjectName("p1", tt.fileName, at)

			require.True(t, strings.HasPrefix(name, "properties/p1/2025/03/"), name)
			assert.True(t, strings.HasSuffix(name, tt.wantExt), name)

			base := strings.TrimSuffix(strings.TrimPrefix(name, "properties/p1/2025/03/"), tt.wantExt)
			_, err := uuid.Parse(base)
			assert.NoError(t, err)
		})
	}
}

func TestObjectName_Unique(t *testing.T) {
	at := time.Now()
	assert.NotEqual(t, ObjectName("p1", "a.jpg", at), ObjectName("p1", "a.jpg", at))
}

func TestObjectURL(t *testing.T) {
	assert.Equal(t,
		"http://localhost:9000/property-images/properties/p1/2025/03/x.jpg",
		ObjectURL("http://localhost:9000/", "property-images", "properties/p1/2025/03/x.jpg"))
}
