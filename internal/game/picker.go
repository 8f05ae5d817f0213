package game

import (
	"errors"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/birthday-surprise/internal/audio"
)

// pickSong asks for an audio file. A cancelled dialog returns an empty path.
func pickSong() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Pick a birthday song"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: audio.Extensions,
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}
