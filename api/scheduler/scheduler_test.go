package scheduler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/parsa000721/records/config"
	"github.com/parsa000721/records/export"
	"github.com/parsa000721/records/models"
)

type staticCases []models.CaseRecord

func (s staticCases) List() []models.CaseRecord { return s }

type memorySink struct {
	puts map[string][]byte
	err  error
}

func (m *memorySink) Put(_ context.Context, name string, body []byte) error {
	if m.err != nil {
		return m.err
	}
	if m.puts == nil {
		m.puts = map[string][]byte{}
	}
	m.puts[name] = body
	return nil
}

type fakeS3 struct {
	input *s3.PutObjectInput
	body  []byte
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

var fixedTime = time.Date(2024, 5, 1, 3, 4, 5, 0, time.UTC)

func cases() staticCases {
	return staticCases{
		{ID: "1", CaseDetails: models.CaseDetails{CaseNumber: "CR-1", CaseStatus: models.StatusPending}},
	}
}

func TestArchiveName(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	assert.Equal(t, "20240501T030405Z-प्रकरण_सूची.xlsx", ArchiveName(fixedTime.In(ist)))
}

func TestRunOnceWritesWorkbook(t *testing.T) {
	sink := &memorySink{}
	s := NewScheduler(cases(), sink, "@daily")
	s.now = func() time.Time { return fixedTime }

	name, err := s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ArchiveName(fixedTime), name)

	f, err := excelize.OpenReader(bytes.NewReader(sink.puts[name]))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestRunOnceSkipsEmptyCollection(t *testing.T) {
	sink := &memorySink{}
	s := NewScheduler(staticCases{}, sink, "@daily")

	name, err := s.RunOnce(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, name)
	assert.Empty(t, sink.puts)
}

func TestRunOnceSinkFailure(t *testing.T) {
	s := NewScheduler(cases(), &memorySink{err: errors.New("bucket gone")}, "@daily")

	_, err := s.RunOnce(context.Background())
	assert.ErrorContains(t, err, "bucket gone")
}

func TestStartRejectsInvalidSchedule(t *testing.T) {
	s := NewScheduler(cases(), &memorySink{}, "not a schedule")
	assert.Error(t, s.Start())
}

func TestStartStop(t *testing.T) {
	s := NewScheduler(cases(), &memorySink{}, "@hourly")
	require.NoError(t, s.Start())
	s.Stop()
}

func TestDirSink(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "archive")
	d, err := NewDirSink(dir)
	require.NoError(t, err)

	require.NoError(t, d.Put(context.Background(), "a.xlsx", []byte("data")))

	b, err := os.ReadFile(filepath.Join(dir, "a.xlsx"))
	require.NoError(t, err)
	assert.Equal(t, "data", string(b))
}

func TestS3SinkPut(t *testing.T) {
	fake := &fakeS3{}
	sink := &S3Sink{client: fake, bucket: "records"}

	require.NoError(t, sink.Put(context.Background(), "x.xlsx", []byte("data")))

	assert.Equal(t, "records", *fake.input.Bucket)
	assert.Equal(t, "archive/x.xlsx", *fake.input.Key)
	assert.Equal(t, export.ContentType, *fake.input.ContentType)
	assert.Equal(t, "data", string(fake.body))
}

func TestNewS3SinkRequiresBucket(t *testing.T) {
	_, err := NewS3Sink(context.Background(), S3Config{})
	assert.Error(t, err)
}

func TestSinkFromConfig(t *testing.T) {
	dir := t.TempDir()

	sink, err := SinkFromConfig(context.Background(), &config.Config{StorePath: dir})
	require.NoError(t, err)
	assert.IsType(t, &DirSink{}, sink)
	assert.DirExists(t, filepath.Join(dir, ArchivePrefix))

	t.Setenv("AWS_ACCESS_KEY_ID", "AKIA")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "SECRET")
	sink, err = SinkFromConfig(context.Background(), &config.Config{ArchiveS3Bucket: "records", ArchiveS3Endpoint: "http://127.0.0.1:9000", ArchiveS3PathStyle: true})
	require.NoError(t, err)
	assert.IsType(t, &S3Sink{}, sink)
}
