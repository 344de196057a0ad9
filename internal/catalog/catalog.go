// Package catalog holds the built-in course catalogs: the mandatory
// sequence shared by every track, one pool per track and a general
// education pool.
package catalog

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/rhyrak/campus-sim/internal/csvio"
	"github.com/rhyrak/campus-sim/pkg/model"
)

//go:embed data/*.csv
var data embed.FS

const (
	mandatoryFile = "mandatory.csv"
	generalFile   = "general.csv"
)

var trackFiles = map[model.Track]string{
	model.TrackScience:  "science.csv",
	model.TrackMedicine: "medicine.csv",
	model.TrackBusiness: "business.csv",
	model.TrackArts:     "arts.csv",
}

var trackAliases = map[string]model.Track{
	"science":  model.TrackScience,
	"stem":     model.TrackScience,
	"理工":       model.TrackScience,
	"medicine": model.TrackMedicine,
	"med":      model.TrackMedicine,
	"医":        model.TrackMedicine,
	"医学":       model.TrackMedicine,
	"business": model.TrackBusiness,
	"biz":      model.TrackBusiness,
	"商科":       model.TrackBusiness,
	"arts":     model.TrackArts,
	"文社":       model.TrackArts,
}

// NormalizeTrack maps free-form input onto a track. Unknown input falls
// back to arts.
func NormalizeTrack(s string) model.Track {
	if t, ok := trackAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t
	}
	return model.TrackArts
}

var (
	cacheMu sync.Mutex
	cache   = map[model.Track][]*model.Course{}
)

// Load returns the full pool for a track in catalog order: mandatory
// sequence, track pool, general pool. Every call returns fresh copies.
func Load(track model.Track) ([]*model.Course, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	pool, ok := cache[track]
	if !ok {
		file, known := trackFiles[track]
		if !known {
			return nil, fmt.Errorf("unknown track %q", track)
		}
		for _, name := range []string{mandatoryFile, file, generalFile} {
			courses, err := loadEmbedded(name)
			if err != nil {
				return nil, err
			}
			pool = append(pool, courses...)
		}
		if err := Validate(pool); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", track, err)
		}
		cache[track] = pool
	}

	out := make([]*model.Course, len(pool))
	for i, c := range pool {
		out[i] = c.Clone()
	}
	return out, nil
}

// MustLoad is Load for the embedded catalogs, which are expected to be valid.
func MustLoad(track model.Track) []*model.Course {
	pool, err := Load(track)
	if err != nil {
		panic(err)
	}
	return pool
}

func loadEmbedded(name string) ([]*model.Course, error) {
	raw, err := data.ReadFile("data/" + name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	courses, err := csvio.LoadCourses(bytes.NewReader(raw), ',')
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return courses, nil
}
