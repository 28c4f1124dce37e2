package shell

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/vidbox/internal/app/session"
	"github.com/osa030/vidbox/internal/domain/video"
	"github.com/osa030/vidbox/internal/infra/catalog"
	"github.com/osa030/vidbox/internal/infra/config"
)

// Mock Session for testing
type mockSession struct {
	calls []string
}

func (m *mockSession) record(call string, args ...string) {
	m.calls = append(m.calls, strings.Join(append([]string{call}, args...), " "))
}

func (m *mockSession) NumberOfVideos()                { m.record("NumberOfVideos") }
func (m *mockSession) ShowAllVideos()                 { m.record("ShowAllVideos") }
func (m *mockSession) PlayVideo(id string)            { m.record("PlayVideo", id) }
func (m *mockSession) StopVideo()                     { m.record("StopVideo") }
func (m *mockSession) PlayRandomVideo()               { m.record("PlayRandomVideo") }
func (m *mockSession) PauseVideo()                    { m.record("PauseVideo") }
func (m *mockSession) ContinueVideo()                 { m.record("ContinueVideo") }
func (m *mockSession) ShowPlaying()                   { m.record("ShowPlaying") }
func (m *mockSession) CreatePlaylist(name string)     { m.record("CreatePlaylist", name) }
func (m *mockSession) ClearPlaylist(name string)      { m.record("ClearPlaylist", name) }
func (m *mockSession) DeletePlaylist(name string)     { m.record("DeletePlaylist", name) }
func (m *mockSession) ShowPlaylist(name string)       { m.record("ShowPlaylist", name) }
func (m *mockSession) ShowAllPlaylists()              { m.record("ShowAllPlaylists") }
func (m *mockSession) SearchVideos(term string)       { m.record("SearchVideos", term) }
func (m *mockSession) SearchVideosWithTag(tag string) { m.record("SearchVideosWithTag", tag) }
func (m *mockSession) AllowVideo(id string)           { m.record("AllowVideo", id) }
func (m *mockSession) AddToPlaylist(name, videoID string) {
	m.record("AddToPlaylist", name, videoID)
}
func (m *mockSession) RemoveFromPlaylist(name, videoID string) {
	m.record("RemoveFromPlaylist", name, videoID)
}
func (m *mockSession) FlagVideo(id, reason string) {
	m.record("FlagVideo", id, "["+reason+"]")
}

func testShellConfig() config.ShellConfig {
	return config.ShellConfig{Prompt: "> ", MaxSuggestions: 1}
}

func newTestShell(input string) (*Shell, *mockSession, *bytes.Buffer) {
	sess := &mockSession{}
	out := &bytes.Buffer{}
	return New(sess, NewLineReader(context.Background(), strings.NewReader(input)), out, testShellConfig()), sess, out
}

func TestShell_ExecuteDispatch(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "number of videos", line: "NUMBER_OF_VIDEOS", want: "NumberOfVideos"},
		{name: "lower case", line: "show_all_videos", want: "ShowAllVideos"},
		{name: "play", line: "PLAY amazing_cats_video_id", want: "PlayVideo amazing_cats_video_id"},
		{name: "play random", line: "PLAY_RANDOM", want: "PlayRandomVideo"},
		{name: "stop", line: "STOP", want: "StopVideo"},
		{name: "pause", line: "PAUSE", want: "PauseVideo"},
		{name: "continue", line: "CONTINUE", want: "ContinueVideo"},
		{name: "show playing", line: "SHOW_PLAYING", want: "ShowPlaying"},
		{name: "create playlist", line: "CREATE_PLAYLIST My_List", want: "CreatePlaylist My_List"},
		{name: "add to playlist", line: "ADD_TO_PLAYLIST my_list vid", want: "AddToPlaylist my_list vid"},
		{name: "remove from playlist", line: "REMOVE_FROM_PLAYLIST my_list vid", want: "RemoveFromPlaylist my_list vid"},
		{name: "clear playlist", line: "CLEAR_PLAYLIST my_list", want: "ClearPlaylist my_list"},
		{name: "delete playlist", line: "DELETE_PLAYLIST my_list", want: "DeletePlaylist my_list"},
		{name: "show playlist", line: "SHOW_PLAYLIST my_list", want: "ShowPlaylist my_list"},
		{name: "show all playlists", line: "SHOW_ALL_PLAYLISTS", want: "ShowAllPlaylists"},
		{name: "search", line: "SEARCH_VIDEOS cat", want: "SearchVideos cat"},
		{name: "search tag", line: "SEARCH_VIDEOS_WITH_TAG #cat", want: "SearchVideosWithTag #cat"},
		{name: "flag without reason", line: "FLAG_VIDEO vid", want: "FlagVideo vid []"},
		{name: "flag with reason", line: "FLAG_VIDEO vid dont like   cats", want: "FlagVideo vid [dont like cats]"},
		{name: "allow", line: "ALLOW_VIDEO vid", want: "AllowVideo vid"},
		{name: "extra spaces", line: "   PLAY   vid  ", want: "PlayVideo vid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh, sess, out := newTestShell("")
			assert.True(t, sh.Execute(tt.line))
			assert.Equal(t, []string{tt.want}, sess.calls)
			assert.Empty(t, out.String())
		})
	}
}

func TestShell_ExecuteInvalid(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "missing argument", line: "PLAY", want: invalidCommand + "\n"},
		{name: "too many arguments", line: "STOP now", want: invalidCommand + "\n"},
		{name: "missing video id", line: "ADD_TO_PLAYLIST my_list", want: invalidCommand + "\n"},
		{name: "typo", line: "PLAYY vid", want: invalidCommand + "\nDid you mean PLAY?\n"},
		{name: "abbreviation", line: "SHWPLAYING", want: invalidCommand + "\nDid you mean SHOW_PLAYING?\n"},
		{name: "nothing close", line: "QQQQQQQQQQQQQQQQ", want: invalidCommand + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh, sess, out := newTestShell("")
			assert.True(t, sh.Execute(tt.line))
			assert.Empty(t, sess.calls)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestShell_ExecuteBlankLine(t *testing.T) {
	sh, sess, out := newTestShell("")
	assert.True(t, sh.Execute("   "))
	assert.Empty(t, sess.calls)
	assert.Empty(t, out.String())
}

func TestShell_ExecuteHelp(t *testing.T) {
	sh, _, out := newTestShell("")
	assert.True(t, sh.Execute("help"))

	text := out.String()
	for _, name := range commandNames() {
		assert.Contains(t, text, name)
	}
	assert.Contains(t, text, "ADD_TO_PLAYLIST <playlist_name> <video_id>")
}

func TestShell_ExecuteExit(t *testing.T) {
	sh, _, _ := newTestShell("")
	assert.False(t, sh.Execute("exit"))
}

func TestShell_RunUntilExit(t *testing.T) {
	sh, sess, out := newTestShell("PLAY a\nSTOP\nEXIT\nPLAY b\n")

	require.NoError(t, sh.Run(context.Background()))
	assert.Equal(t, []string{"PlayVideo a", "StopVideo"}, sess.calls)
	assert.Contains(t, out.String(), "Thank you and goodbye!")
}

func TestShell_RunUntilEOF(t *testing.T) {
	sh, sess, _ := newTestShell("PLAY a\nSTOP")

	require.NoError(t, sh.Run(context.Background()))
	assert.Equal(t, []string{"PlayVideo a", "StopVideo"}, sess.calls)
}

func TestShell_RunCancelled(t *testing.T) {
	sh, sess, _ := newTestShell("PLAY a\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, sh.Run(ctx))
	assert.Empty(t, sess.calls)
}

func TestShell_RunCancelledWhileReading(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sess := &mockSession{}
	sh := New(sess, NewLineReader(ctx, pr), &bytes.Buffer{}, testShellConfig())

	done := make(chan error, 1)
	go func() { done <- sh.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Empty(t, sess.calls)
}

func TestShell_SearchPromptCancelled(t *testing.T) {
	lib, err := catalog.NewLibrary([]video.Video{
		{ID: "funny_dogs_video_id", Title: "Funny Dogs", Tags: []string{"#dog"}},
	})
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Moderation.DefaultFlagReason = "Not supplied"

	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := NewLineReader(ctx, pr)
	out := &bytes.Buffer{}
	sh := New(session.NewManager(cfg, lib, out, in), in, out, testShellConfig())

	done := make(chan error, 1)
	go func() { done <- sh.Run(ctx) }()

	_, err = io.WriteString(pw, "SEARCH_VIDEOS dog\n")
	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestLineReader_ReadLineCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	r := NewLineReader(ctx, pr)

	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := r.ReadLine()
	assert.ErrorIs(t, err, context.Canceled)

	_, err = r.ReadLine()
	assert.ErrorIs(t, err, context.Canceled)
}

func TestShell_SearchReplySharesReader(t *testing.T) {
	lib, err := catalog.NewLibrary([]video.Video{
		{ID: "amazing_cats_video_id", Title: "Amazing Cats", Tags: []string{"#cat", "#animal"}},
		{ID: "funny_dogs_video_id", Title: "Funny Dogs", Tags: []string{"#dog", "#animal"}},
	})
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Playback.RandomSeed = 1
	cfg.Moderation.DefaultFlagReason = "Not supplied"

	in := NewLineReader(context.Background(), strings.NewReader("SEARCH_VIDEOS_WITH_TAG #animal\n2\nSHOW_PLAYING\n"))
	out := &bytes.Buffer{}
	sess := session.NewManager(cfg, lib, out, in)
	sh := New(sess, in, out, testShellConfig())

	require.NoError(t, sh.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "Here are the results for #animal:\n1) Amazing Cats (amazing_cats_video_id) [#cat #animal]\n2) Funny Dogs (funny_dogs_video_id) [#dog #animal]\n")
	assert.Contains(t, text, "Playing video: Funny Dogs\n")
	assert.Contains(t, text, "Currently playing: Funny Dogs (funny_dogs_video_id) [#dog #animal]\n")
	assert.NotContains(t, text, invalidCommand)
}

func TestLineReader_ReadLine(t *testing.T) {
	r := NewLineReader(context.Background(), strings.NewReader("first\r\nsecond\n\nlast"))

	for _, want := range []string{"first", "second", "", "last"} {
		line, err := r.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, line)
	}

	_, err := r.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestSuggest(t *testing.T) {
	assert.Equal(t, []string{"PLAY"}, suggest("playy", 1))
	assert.Nil(t, suggest("", 1))
	assert.Nil(t, suggest("PLAY", 0))
	assert.LessOrEqual(t, len(suggest("SHOW", 3)), 3)
}
