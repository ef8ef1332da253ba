package dataset

import (
	"testing"

	"github.com/jsphweid/salamidex/model"
	"github.com/stretchr/testify/assert"
)

type fakeProvider struct {
	calls [][]string
}

func (p *fakeProvider) TrackMetadatas(trackIds []string) map[string]model.TrackMetadata {
	p.calls = append(p.calls, trackIds)
	title := "I Don't Mind"
	return map[string]model.TrackMetadata{
		"3": {Title: &title},
	}
}

func TestTrackIdsAreUnpaddedAndSorted(t *testing.T) {
	assert.Equal(t, TrackIds("testdata"), []string{"10", "3"})
}

func TestLoadAttachesMetadata(t *testing.T) {
	provider := &fakeProvider{}
	tracks := Load("testdata", provider)

	assert := assert.New(t)
	assert.Equal(len(tracks), 2)
	assert.Equal(*tracks["3"].Metadata.Title, "I Don't Mind")

	// unknown to the provider -> all-null sentinel record
	assert.Equal(tracks["10"].Metadata, model.UnknownMetadata())

	assert.Equal(provider.calls, [][]string{{"10", "3"}})
}

func TestLoadWithoutProvider(t *testing.T) {
	tracks := Load("testdata", nil)

	assert := assert.New(t)
	assert.Equal(len(tracks), 2)
	assert.Equal(tracks["3"].Metadata, model.UnknownMetadata())

	sections, err := tracks["10"].Sections()
	assert.Nil(err)
	assert.Equal(len(sections), 1)
	assert.Equal(sections[0].Function, "intro")
}
