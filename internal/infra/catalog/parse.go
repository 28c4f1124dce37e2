package catalog

import (
	"bufio"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osa030/vidbox/internal/domain/video"
)

// Entry is the serialized form of a video in YAML and JSON catalogs.
type Entry struct {
	ID    string   `yaml:"id" json:"id" mapstructure:"id" validate:"required"`
	Title string   `yaml:"title" json:"title" mapstructure:"title" validate:"required"`
	Tags  []string `yaml:"tags" json:"tags" mapstructure:"tags"`
	Flag  string   `yaml:"flag" json:"flag" mapstructure:"flag"`
}

// Video converts the entry to a domain video.
func (e Entry) Video() video.Video {
	tags := make([]string, 0, len(e.Tags))
	for _, t := range e.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return video.Video{
		ID:    strings.TrimSpace(e.ID),
		Title: strings.TrimSpace(e.Title),
		Tags:  tags,
		Flag:  e.Flag,
	}
}

// EntriesToVideos validates entries and converts them.
func EntriesToVideos(entries []Entry) ([]video.Video, error) {
	validate := validator.New()
	videos := make([]video.Video, 0, len(entries))
	for i, e := range entries {
		if err := validate.Struct(e); err != nil {
			return nil, errors.Wrapf(err, "invalid catalog entry %d", i+1)
		}
		videos = append(videos, e.Video())
	}
	return videos, nil
}

// ParseText parses the pipe-separated catalog format, one video per line:
//
//	Amazing Cats | amazing_cats_video_id | #cat , #animal
//
// The tag field is optional. Blank lines are skipped.
func ParseText(r io.Reader) ([]video.Video, error) {
	var videos []video.Video

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, "|")
		if len(fields) < 2 || len(fields) > 3 {
			return nil, errors.Newf("line %d: expected \"title | id | tags\", got %q", lineNo, line)
		}

		e := Entry{
			Title: fields[0],
			ID:    fields[1],
		}
		if len(fields) == 3 {
			e.Tags = strings.Split(fields[2], ",")
		}

		v := e.Video()
		if v.ID == "" || v.Title == "" {
			return nil, errors.Newf("line %d: title and id are required", lineNo)
		}
		videos = append(videos, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read catalog")
	}

	return videos, nil
}

// yamlCatalog is the top-level YAML catalog document.
type yamlCatalog struct {
	Videos []Entry `yaml:"videos"`
}

// ParseYAML parses a YAML catalog document with a top-level "videos" list.
func ParseYAML(r io.Reader) ([]video.Video, error) {
	var doc yamlCatalog
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []video.Video{}, nil
		}
		return nil, errors.Wrap(err, "failed to parse catalog")
	}
	return EntriesToVideos(doc.Videos)
}
