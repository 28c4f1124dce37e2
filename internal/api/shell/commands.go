package shell

import (
	"strings"
)

// Session is the set of operations the shell drives.
type Session interface {
	NumberOfVideos()
	ShowAllVideos()
	PlayVideo(id string)
	StopVideo()
	PlayRandomVideo()
	PauseVideo()
	ContinueVideo()
	ShowPlaying()
	CreatePlaylist(name string)
	AddToPlaylist(name, videoID string)
	RemoveFromPlaylist(name, videoID string)
	ClearPlaylist(name string)
	DeletePlaylist(name string)
	ShowPlaylist(name string)
	ShowAllPlaylists()
	SearchVideos(term string)
	SearchVideosWithTag(tag string)
	FlagVideo(id, reason string)
	AllowVideo(id string)
}

// command describes one shell command.
// Variadic commands accept any number of arguments beyond minArgs.
type command struct {
	name     string
	usage    string
	help     string
	minArgs  int
	variadic bool
	run      func(s Session, args []string)
}

func (c command) accepts(n int) bool {
	if c.variadic {
		return n >= c.minArgs
	}
	return n == c.minArgs
}

const (
	cmdHelp = "HELP"
	cmdExit = "EXIT"
)

var commands = []command{
	{name: "NUMBER_OF_VIDEOS", help: "Shows how many videos are in the library.",
		run: func(s Session, _ []string) { s.NumberOfVideos() }},
	{name: "SHOW_ALL_VIDEOS", help: "Lists all videos from the library.",
		run: func(s Session, _ []string) { s.ShowAllVideos() }},
	{name: "PLAY", usage: "<video_id>", help: "Plays specified video.", minArgs: 1,
		run: func(s Session, a []string) { s.PlayVideo(a[0]) }},
	{name: "PLAY_RANDOM", help: "Plays a random video from the library.",
		run: func(s Session, _ []string) { s.PlayRandomVideo() }},
	{name: "STOP", help: "Stop the current video.",
		run: func(s Session, _ []string) { s.StopVideo() }},
	{name: "PAUSE", help: "Pause the current video.",
		run: func(s Session, _ []string) { s.PauseVideo() }},
	{name: "CONTINUE", help: "Resume the current paused video.",
		run: func(s Session, _ []string) { s.ContinueVideo() }},
	{name: "SHOW_PLAYING", help: "Displays the title, video_id, video tags and paused status of the video that is currently playing (or paused).",
		run: func(s Session, _ []string) { s.ShowPlaying() }},
	{name: "CREATE_PLAYLIST", usage: "<playlist_name>", help: "Creates a new (empty) playlist with the provided name.", minArgs: 1,
		run: func(s Session, a []string) { s.CreatePlaylist(a[0]) }},
	{name: "ADD_TO_PLAYLIST", usage: "<playlist_name> <video_id>", help: "Adds the requested video to the playlist.", minArgs: 2,
		run: func(s Session, a []string) { s.AddToPlaylist(a[0], a[1]) }},
	{name: "REMOVE_FROM_PLAYLIST", usage: "<playlist_name> <video_id>", help: "Removes the specified video from the specified playlist", minArgs: 2,
		run: func(s Session, a []string) { s.RemoveFromPlaylist(a[0], a[1]) }},
	{name: "CLEAR_PLAYLIST", usage: "<playlist_name>", help: "Removes all videos from the playlist.", minArgs: 1,
		run: func(s Session, a []string) { s.ClearPlaylist(a[0]) }},
	{name: "DELETE_PLAYLIST", usage: "<playlist_name>", help: "Deletes the playlist.", minArgs: 1,
		run: func(s Session, a []string) { s.DeletePlaylist(a[0]) }},
	{name: "SHOW_PLAYLIST", usage: "<playlist_name>", help: "List all the videos in this playlist.", minArgs: 1,
		run: func(s Session, a []string) { s.ShowPlaylist(a[0]) }},
	{name: "SHOW_ALL_PLAYLISTS", help: "Display all the available playlists.",
		run: func(s Session, _ []string) { s.ShowAllPlaylists() }},
	{name: "SEARCH_VIDEOS", usage: "<search_term>", help: "Display all the videos whose titles contain the search_term.", minArgs: 1,
		run: func(s Session, a []string) { s.SearchVideos(a[0]) }},
	{name: "SEARCH_VIDEOS_WITH_TAG", usage: "<tag_name>", help: "Display all videos whose tags contains the provided tag.", minArgs: 1,
		run: func(s Session, a []string) { s.SearchVideosWithTag(a[0]) }},
	{name: "FLAG_VIDEO", usage: "<video_id> [flag_reason]", help: "Mark a video as flagged.", minArgs: 1, variadic: true,
		run: func(s Session, a []string) { s.FlagVideo(a[0], strings.Join(a[1:], " ")) }},
	{name: "ALLOW_VIDEO", usage: "<video_id>", help: "Removes a flag from a video.", minArgs: 1,
		run: func(s Session, a []string) { s.AllowVideo(a[0]) }},
}

// lookup finds a command by case-insensitive name.
func lookup(name string) (command, bool) {
	name = strings.ToUpper(name)
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

// commandNames returns every name the shell accepts, including HELP and EXIT.
func commandNames() []string {
	names := make([]string, 0, len(commands)+2)
	for _, c := range commands {
		names = append(names, c.name)
	}
	return append(names, cmdHelp, cmdExit)
}

func helpText() string {
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, c := range commands {
		line := c.name
		if c.usage != "" {
			line += " " + c.usage
		}
		b.WriteString("    " + line + " - " + c.help + "\n")
	}
	b.WriteString("    " + cmdHelp + " - Displays help.\n")
	b.WriteString("    " + cmdExit + " - Terminates the program execution.\n")
	return b.String()
}
