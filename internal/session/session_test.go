package session_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nicky-ayoub/behold/internal/scan"
	"github.com/nicky-ayoub/behold/internal/session"
	"github.com/nicky-ayoub/behold/internal/session/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"pkt.systems/pslog"
)

// fakeTexture counts releases so tests can check ownership.
type fakeTexture struct {
	w, h     int
	released int
}

func (t *fakeTexture) Bounds() image.Rectangle { return image.Rect(0, 0, t.w, t.h) }
func (t *fakeTexture) Deallocate()             { t.released++ }

// fakeDecoder accepts files whose content starts with "img".
type fakeDecoder struct {
	calls    map[string]int
	textures []*fakeTexture
}

func newFakeDecoder() *fakeDecoder {
	return &fakeDecoder{calls: map[string]int{}}
}

func (d *fakeDecoder) Decode(path string) (session.Texture, error) {
	d.calls[path]++
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(data, []byte("img")) {
		return nil, errors.New("unknown format")
	}
	tex := &fakeTexture{w: 4, h: 3}
	d.textures = append(d.textures, tex)
	return tex, nil
}

func discardLogger() pslog.Logger {
	return pslog.NewWithOptions(io.Discard, pslog.Options{
		Mode:     pslog.ModeStructured,
		NoColor:  true,
		MinLevel: pslog.DebugLevel,
	})
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_SameFileTwiceIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, "a.png"), "img")

	ctrl := gomock.NewController(t)
	tex := mocks.NewMockTexture(ctrl)
	tex.EXPECT().Bounds().Return(image.Rect(0, 0, 8, 8)).AnyTimes()
	dec := mocks.NewMockDecoder(ctrl)
	dec.EXPECT().Decode(path).Return(tex, nil).Times(1)

	s := session.New(dec, scan.NewFilter(), discardLogger())

	first, err := s.Load(path)
	require.NoError(t, err)
	second, err := s.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, s.Len())
}

func TestLoad_RejectsExecutableExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, "viewer.exe"), "img")

	ctrl := gomock.NewController(t)
	dec := mocks.NewMockDecoder(ctrl) // no Decode call expected

	s := session.New(dec, scan.NewFilter(), discardLogger())
	index, err := s.Load(path)

	assert.Equal(t, session.NotLoaded, index)
	require.ErrorIs(t, err, session.ErrRejectedExtension)
	assert.True(t, session.IsNotLoaded(err))
	assert.False(t, s.HasImages())
}

func TestLoad_DecodeFailureLeavesCollectionUntouched(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, "notes.txt"), "hello")

	s := session.New(newFakeDecoder(), scan.NewFilter(), discardLogger())
	index, err := s.Load(path)

	assert.Equal(t, session.NotLoaded, index)
	require.ErrorIs(t, err, session.ErrDecodeFailed)
	assert.Equal(t, 0, s.Len())
}

func TestLoad_ZeroWidthTextureIsReleased(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, "empty.png"), "img")

	ctrl := gomock.NewController(t)
	tex := mocks.NewMockTexture(ctrl)
	tex.EXPECT().Bounds().Return(image.Rectangle{}).AnyTimes()
	tex.EXPECT().Deallocate().Times(1)
	dec := mocks.NewMockDecoder(ctrl)
	dec.EXPECT().Decode(path).Return(tex, nil)

	s := session.New(dec, scan.NewFilter(), discardLogger())
	_, err := s.Load(path)

	require.ErrorIs(t, err, session.ErrDecodeFailed)
	assert.False(t, s.HasImages())
}

func TestLoad_MissingPath(t *testing.T) {
	s := session.New(newFakeDecoder(), scan.NewFilter(), discardLogger())
	index, err := s.Load(filepath.Join(t.TempDir(), "gone.png"))

	assert.Equal(t, session.NotLoaded, index)
	require.ErrorIs(t, err, session.ErrNotFileOrDir)
}

func TestLoad_DirectoryExpandsValidImagesOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "1.png"), "img")
	writeFile(t, filepath.Join(dir, "2.jpg"), "img")
	writeFile(t, filepath.Join(dir, "3.txt"), "text")
	writeFile(t, filepath.Join(dir, "4.exe"), "img")
	writeFile(t, filepath.Join(dir, "nested", "5.gif"), "img")

	dec := newFakeDecoder()
	s := session.New(dec, scan.NewFilter(), discardLogger())
	last, err := s.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "1.png"),
		filepath.Join(dir, "2.jpg"),
		filepath.Join(dir, "nested", "5.gif"),
	}, s.Paths())
	assert.Equal(t, 2, last)
	assert.Zero(t, dec.calls[filepath.Join(dir, "4.exe")])
}

func TestLoad_DirectoryWithoutImages(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "readme.txt"), "text")

	s := session.New(newFakeDecoder(), scan.NewFilter(), discardLogger())
	index, err := s.Load(dir)

	assert.Equal(t, session.NotLoaded, index)
	require.ErrorIs(t, err, session.ErrNoImages)
}

func TestLoad_DirectoryTwiceDoesNotDuplicate(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.png"), "img")
	writeFile(t, filepath.Join(dir, "b.png"), "img")

	dec := newFakeDecoder()
	s := session.New(dec, scan.NewFilter(), discardLogger())
	_, err := s.Load(dir)
	require.NoError(t, err)
	_, err = s.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 1, dec.calls[filepath.Join(dir, "a.png")])
}

func TestLoad_SymlinkLoopTerminates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.png"), "img")
	if err := os.Symlink(dir, filepath.Join(dir, "loop")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	s := session.New(newFakeDecoder(), scan.NewFilter(), discardLogger())
	_, err := s.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(dir, "a.png")}, s.Paths())
}

func TestLoad_ArgumentsScenario(t *testing.T) {
	root := t.TempDir()
	imgA := writeFile(t, filepath.Join(root, "imgA.png"), "img")
	photos := filepath.Join(root, "photosDir")
	writeFile(t, filepath.Join(photos, "b.png"), "img")
	writeFile(t, filepath.Join(photos, "c.txt"), "text")
	writeFile(t, filepath.Join(photos, "d.jpg"), "img")

	s := session.New(newFakeDecoder(), scan.NewFilter(), discardLogger())
	for _, arg := range []string{imgA, photos} {
		_, _ = s.Load(arg)
	}

	assert.Equal(t, []string{
		imgA,
		filepath.Join(photos, "b.png"),
		filepath.Join(photos, "d.jpg"),
	}, s.Paths())
	assert.True(t, s.HasImages())

	first, ok := s.At(0)
	require.True(t, ok)
	assert.Equal(t, imgA, first.Path)
}

func TestAt_OutOfRange(t *testing.T) {
	s := session.New(newFakeDecoder(), nil, discardLogger())
	_, ok := s.At(0)
	assert.False(t, ok)
	_, ok = s.At(-1)
	assert.False(t, ok)
}

func TestClose_ReleasesEachTextureOnce(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.png"), "img")
	writeFile(t, filepath.Join(dir, "b.png"), "img")

	dec := newFakeDecoder()
	s := session.New(dec, scan.NewFilter(), discardLogger())
	_, err := s.Load(dir)
	require.NoError(t, err)

	s.Close()
	s.Close()

	require.Len(t, dec.textures, 2)
	for _, tex := range dec.textures {
		assert.Equal(t, 1, tex.released)
	}
}

func TestLoad_LogsAlreadyLoaded(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, "a.png"), "img")

	var buf bytes.Buffer
	logger := pslog.NewWithOptions(&buf, pslog.Options{
		Mode:          pslog.ModeStructured,
		NoColor:       true,
		MinLevel:      pslog.InfoLevel,
		VerboseFields: true,
	})
	s := session.New(newFakeDecoder(), scan.NewFilter(), logger)
	_, err := s.Load(path)
	require.NoError(t, err)
	_, err = s.Load(path)
	require.NoError(t, err)

	line := strings.TrimSpace(buf.String())
	require.NotEmpty(t, line)
	entry := map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(strings.Split(line, "\n")[0]), &entry))
	assert.Equal(t, path, entry["path"])
}

func TestLoad_FailuresMatchSentinels(t *testing.T) {
	dir := t.TempDir()
	exe := writeFile(t, filepath.Join(dir, "x.exe"), "img")
	txt := writeFile(t, filepath.Join(dir, "notes.txt"), "text")
	empty := filepath.Join(dir, "empty")
	require.NoError(t, os.Mkdir(empty, 0o755))

	tests := []struct {
		name string
		path string
		want error
	}{
		{"rejected extension", exe, session.ErrRejectedExtension},
		{"decode failure", txt, session.ErrDecodeFailed},
		{"missing path", filepath.Join(dir, "missing.png"), session.ErrNotFileOrDir},
		{"empty directory", empty, session.ErrNoImages},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := session.New(newFakeDecoder(), scan.NewFilter(), discardLogger())
			index, err := s.Load(tt.path)

			assert.Equal(t, session.NotLoaded, index)
			require.ErrorIs(t, err, tt.want)
			assert.True(t, session.IsNotLoaded(err))
			assert.Zero(t, s.Len())
		})
	}

	assert.False(t, session.IsNotLoaded(nil))
	assert.False(t, session.IsNotLoaded(errors.New("unrelated")))
}
