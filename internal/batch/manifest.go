package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Transition int        `json:"transition"`
	Step       int        `json:"step"`
	Fraction   float64    `json:"fraction"`
	Leaving    int        `json:"leaving"`
	Entering   int        `json:"entering"`
	Angle1     float64    `json:"angle1"`
	Angle2     float64    `json:"angle2"`
	Forward    bool       `json:"forward"`
	Matrix1    [9]float64 `json:"matrix1"`
	Matrix2    [9]float64 `json:"matrix2"`
	Title      string     `json:"title"`
	Image      string     `json:"image"`
}

// NewManifest describes every job, in plan order.
func NewManifest(jobs []Job) []ManifestEntry {
	entries := make([]ManifestEntry, len(jobs))
	for i, j := range jobs {
		fr := j.Frame
		entries[i] = ManifestEntry{
			Transition: j.Transition,
			Step:       j.Step,
			Fraction:   fr.Fraction,
			Leaving:    fr.Index1,
			Entering:   fr.Index2,
			Angle1:     fr.Angle1,
			Angle2:     fr.Angle2,
			Forward:    fr.Forward,
			Matrix1:    fr.Panel1,
			Matrix2:    fr.Panel2,
			Title:      fr.Title(),
			Image:      j.Name(),
		}
	}
	return entries
}

// WriteManifest writes the manifest of jobs to path as indented JSON.
func WriteManifest(path string, jobs []Job) error {
	data, err := json.MarshalIndent(NewManifest(jobs), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
