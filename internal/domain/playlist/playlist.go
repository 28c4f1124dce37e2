// Package playlist provides the Playlist domain entity.
package playlist

import "strings"

// Playlist is a named, ordered, duplicate-free sequence of video titles.
type Playlist struct {
	Name   string   // Display name, casing as given at creation
	Titles []string // Video titles in insertion order
}

// New creates an empty playlist.
func New(name string) *Playlist {
	return &Playlist{
		Name:   name,
		Titles: make([]string, 0),
	}
}

// Matches reports whether name identifies this playlist (case-insensitive).
func (p *Playlist) Matches(name string) bool {
	return strings.EqualFold(p.Name, name)
}

// Contains reports whether the exact title is already a member.
func (p *Playlist) Contains(title string) bool {
	for _, t := range p.Titles {
		if t == title {
			return true
		}
	}
	return false
}

// Add appends title. Returns false if it was already present.
func (p *Playlist) Add(title string) bool {
	if p.Contains(title) {
		return false
	}
	p.Titles = append(p.Titles, title)
	return true
}

// Remove drops title. Returns false if it was not present.
func (p *Playlist) Remove(title string) bool {
	for i, t := range p.Titles {
		if t == title {
			p.Titles = append(p.Titles[:i], p.Titles[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes all titles.
func (p *Playlist) Clear() {
	p.Titles = make([]string, 0)
}

// Len returns the number of titles.
func (p *Playlist) Len() int {
	return len(p.Titles)
}

// IsEmpty reports whether the playlist has no titles.
func (p *Playlist) IsEmpty() bool {
	return len(p.Titles) == 0
}
