package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"salesreport-srv/internal/extraction"
	"salesreport-srv/internal/model"
	"salesreport-srv/internal/pipeline"
	"salesreport-srv/internal/pipeline/repository"
)

const (
	testBucket = "salesreport-uploads"
	testCSV    = "product,sales,amount\nWidget,100,50.00\nGadget,75,30.00\n"
)

type testEnv struct {
	repo      *fakeRepo
	logRepo   *fakeLogRepo
	extractor *fakeExtractor
	storage   *fakeStorage
	rates     *fakeRates
	events    *fakeEvents
	uc        pipeline.UseCase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		repo:      newFakeRepo(),
		logRepo:   newFakeLogRepo(),
		extractor: &fakeExtractor{},
		storage:   newFakeStorage(),
		rates:     &fakeRates{rate: decimal.RequireFromString("0.92")},
		events:    &fakeEvents{},
	}
	env.uc = New(testLogger(), env.repo, env.logRepo, env.extractor, env.storage, env.rates, env.events, Config{
		UploadBucket: testBucket,
		JobTimeout:   10 * time.Second,
	})
	return env
}

// seedJob registers an uploaded job whose CSV is already in storage.
func (env *testEnv) seedJob(t *testing.T, jobID, csv string) *model.UploadJob {
	t.Helper()
	objectName := "uploads/" + jobID + ".csv"
	env.storage.put(testBucket, objectName, []byte(csv))
	job, err := env.repo.CreateJob(context.Background(), repository.CreateJobOptions{
		ID:       jobID,
		FileName: "sales.csv",
		FileURL:  "s3://" + testBucket + "/" + objectName,
	})
	if err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return job
}

func (env *testEnv) waitTerminal(t *testing.T, jobID string) *model.UploadJob {
	t.Helper()
	select {
	case id := <-env.repo.done:
		if id != jobID {
			t.Fatalf("unexpected job reached terminal state: %s", id)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("job did not reach a terminal state in time")
	}
	job, err := env.repo.GetJobByID(context.Background(), jobID)
	if err != nil {
		t.Fatalf("get job: %v", err)
	}
	return job
}

func hasMessage(messages []string, substr string) bool {
	for _, m := range messages {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

func TestProcess_EndToEnd(t *testing.T) {
	env := newTestEnv(t)
	env.extractor.products = []string{"Widget", "Gadget"}
	env.repo.records = []model.RegionalRecord{
		{Region: "US", Product: "Widget", Sales: 90, Amount: decimal.RequireFromString("45.00")},
		{Region: "EU", Product: "Widget", Sales: 100, Amount: decimal.RequireFromString("50.00")},
	}
	env.seedJob(t, "job-1", testCSV)

	out, err := env.uc.Process(context.Background(), pipeline.ProcessInput{JobID: "job-1"})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if out.Status != model.JobStatusProcessing {
		t.Errorf("status = %s, want PROCESSING", out.Status)
	}

	job := env.waitTerminal(t, "job-1")
	if job.Status != model.JobStatusCompleted {
		t.Fatalf("job status = %s (%s: %s), want COMPLETED", job.Status, job.ErrorKind, job.ErrorMessage)
	}
	if job.CompletedAt == nil {
		t.Error("CompletedAt not set")
	}

	rows := env.repo.rows["job-1"]
	if len(rows) != 2 {
		t.Fatalf("got %d report rows, want 2: %+v", len(rows), rows)
	}

	// Widget rows only, EU before US, EUR = USD * 0.92 rounded to cents.
	want := []struct {
		region string
		sales  int
		usd    string
		eur    string
	}{
		{"EU", 100, "50.00", "46.00"},
		{"US", 90, "45.00", "41.40"},
	}
	for i, w := range want {
		row := rows[i]
		if row.Product != "Widget" || row.Region != w.region || row.Sales != w.sales {
			t.Errorf("row %d = %+v, want Widget/%s/%d", i, row, w.region, w.sales)
		}
		if row.AmountUSD.StringFixed(2) != w.usd {
			t.Errorf("row %d AmountUSD = %s, want %s", i, row.AmountUSD.StringFixed(2), w.usd)
		}
		if row.AmountEUR.StringFixed(2) != w.eur {
			t.Errorf("row %d AmountEUR = %s, want %s", i, row.AmountEUR.StringFixed(2), w.eur)
		}
	}

	// The rate is fetched exactly once per run.
	if env.rates.callCount() != 1 {
		t.Errorf("rate fetched %d times, want 1", env.rates.callCount())
	}

	messages := env.logRepo.messages("job-1")
	if !hasMessage(messages, "No regional data found for product Gadget") {
		t.Errorf("missing Gadget warning in log: %v", messages)
	}
	if !hasMessage(messages, "Processing completed") {
		t.Errorf("missing completion entry in log: %v", messages)
	}

	results := env.events.published()
	if len(results) != 1 {
		t.Fatalf("got %d published events, want 1", len(results))
	}
	if results[0].Status != string(model.JobStatusCompleted) || results[0].RowCount != 2 {
		t.Errorf("event = %+v, want COMPLETED with 2 rows", results[0])
	}
}

func TestProcess_JobNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.uc.Process(context.Background(), pipeline.ProcessInput{JobID: "missing"})
	if !errors.Is(err, pipeline.ErrJobNotFound) {
		t.Fatalf("err = %v, want ErrJobNotFound", err)
	}
}

func TestProcess_RejectsRunningAndFinishedJobs(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.seedJob(t, "job-1", testCSV)
	if err := env.repo.UpdateProcessing(ctx, "job-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := env.uc.Process(ctx, pipeline.ProcessInput{JobID: "job-1"}); !errors.Is(err, pipeline.ErrJobAlreadyRunning) {
		t.Errorf("processing job: err = %v, want ErrJobAlreadyRunning", err)
	}

	env.seedJob(t, "job-2", testCSV)
	if err := env.repo.UpdateFailed(ctx, repository.UpdateFailedOptions{JobID: "job-2", ErrorKind: pipeline.ErrorKindParse}); err != nil {
		t.Fatal(err)
	}
	<-env.repo.done
	if _, err := env.uc.Process(ctx, pipeline.ProcessInput{JobID: "job-2"}); !errors.Is(err, pipeline.ErrJobFinished) {
		t.Errorf("failed job: err = %v, want ErrJobFinished", err)
	}
}

func TestProcess_ConcurrentTriggersClaimOnce(t *testing.T) {
	env := newTestEnv(t)
	env.extractor.products = []string{"Widget"}
	env.extractor.block = make(chan struct{})
	env.seedJob(t, "job-1", testCSV)

	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := env.uc.Process(context.Background(), pipeline.ProcessInput{JobID: "job-1"})
			errs <- err
		}()
	}

	var started, rejected int
	for i := 0; i < 2; i++ {
		switch err := <-errs; {
		case err == nil:
			started++
		case errors.Is(err, pipeline.ErrJobAlreadyRunning):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if started != 1 || rejected != 1 {
		t.Fatalf("started = %d, rejected = %d, want exactly one of each", started, rejected)
	}

	close(env.extractor.block)
	job := env.waitTerminal(t, "job-1")
	if job.Status != model.JobStatusCompleted {
		t.Fatalf("job status = %s, want COMPLETED", job.Status)
	}
	if results := env.events.published(); len(results) != 1 {
		t.Errorf("got %d published events, want 1", len(results))
	}
}

func TestProcess_IndependentJobsComplete(t *testing.T) {
	env := newTestEnv(t)
	env.extractor.products = []string{"Widget"}
	env.repo.records = []model.RegionalRecord{
		{Region: "EU", Product: "Widget", Sales: 100, Amount: decimal.RequireFromString("50.00")},
	}
	env.seedJob(t, "job-1", testCSV)
	env.seedJob(t, "job-2", testCSV)

	for _, id := range []string{"job-1", "job-2"} {
		if _, err := env.uc.Process(context.Background(), pipeline.ProcessInput{JobID: id}); err != nil {
			t.Fatalf("Process(%s): %v", id, err)
		}
	}

	finished := make(map[string]bool)
	for i := 0; i < 2; i++ {
		select {
		case id := <-env.repo.done:
			finished[id] = true
		case <-time.After(3 * time.Second):
			t.Fatal("jobs did not reach a terminal state in time")
		}
	}
	if !finished["job-1"] || !finished["job-2"] {
		t.Fatalf("finished = %v, want both jobs", finished)
	}

	for _, id := range []string{"job-1", "job-2"} {
		job, err := env.repo.GetJobByID(context.Background(), id)
		if err != nil {
			t.Fatalf("get job %s: %v", id, err)
		}
		if job.Status != model.JobStatusCompleted {
			t.Errorf("job %s status = %s, want COMPLETED", id, job.Status)
		}
		if rows := env.repo.rows[id]; len(rows) != 1 {
			t.Errorf("job %s has %d report rows, want 1", id, len(rows))
		}
	}
}

func TestProcess_EmptyExtractionCompletesWithEmptyReport(t *testing.T) {
	env := newTestEnv(t)
	env.extractor.products = nil
	env.seedJob(t, "job-1", testCSV)

	if _, err := env.uc.Process(context.Background(), pipeline.ProcessInput{JobID: "job-1"}); err != nil {
		t.Fatalf("Process: %v", err)
	}

	job := env.waitTerminal(t, "job-1")
	if job.Status != model.JobStatusCompleted {
		t.Fatalf("job status = %s, want COMPLETED", job.Status)
	}
	if rows := env.repo.rows["job-1"]; len(rows) != 0 {
		t.Errorf("got %d rows, want empty report", len(rows))
	}
	if env.rates.callCount() != 0 {
		t.Errorf("rate fetched %d times, want 0 for empty extraction", env.rates.callCount())
	}
	if !hasMessage(env.logRepo.messages("job-1"), "No products extracted") {
		t.Error("missing empty-extraction warning in log")
	}
}

func TestProcess_RateFailureFailsJobKeepingLog(t *testing.T) {
	env := newTestEnv(t)
	env.extractor.products = []string{"Widget"}
	env.repo.records = []model.RegionalRecord{
		{Region: "EU", Product: "Widget", Sales: 100, Amount: decimal.RequireFromString("50.00")},
	}
	env.rates.err = errors.New("provider unreachable")
	env.seedJob(t, "job-1", testCSV)

	if _, err := env.uc.Process(context.Background(), pipeline.ProcessInput{JobID: "job-1"}); err != nil {
		t.Fatalf("Process: %v", err)
	}

	job := env.waitTerminal(t, "job-1")
	if job.Status != model.JobStatusFailed {
		t.Fatalf("job status = %s, want FAILED", job.Status)
	}
	if job.ErrorKind != pipeline.ErrorKindRate {
		t.Errorf("error kind = %s, want %s", job.ErrorKind, pipeline.ErrorKindRate)
	}

	// Entries written before the failure stay available.
	messages := env.logRepo.messages("job-1")
	if !hasMessage(messages, "Parsed 2 data rows") {
		t.Errorf("pre-failure entries lost: %v", messages)
	}
	if !hasMessage(messages, "Processing failed") {
		t.Errorf("missing failure entry: %v", messages)
	}

	results := env.events.published()
	if len(results) != 1 || results[0].Status != string(model.JobStatusFailed) {
		t.Errorf("events = %+v, want one FAILED event", results)
	}
}

func TestProcess_StoreLookupRetriesOnce(t *testing.T) {
	env := newTestEnv(t)
	env.extractor.products = []string{"Widget"}
	env.repo.records = []model.RegionalRecord{
		{Region: "EU", Product: "Widget", Sales: 100, Amount: decimal.RequireFromString("50.00")},
	}
	env.repo.lookupFails = 1
	env.seedJob(t, "job-1", testCSV)

	if _, err := env.uc.Process(context.Background(), pipeline.ProcessInput{JobID: "job-1"}); err != nil {
		t.Fatalf("Process: %v", err)
	}

	job := env.waitTerminal(t, "job-1")
	if job.Status != model.JobStatusCompleted {
		t.Fatalf("job status = %s, want COMPLETED after retry", job.Status)
	}
	if env.repo.lookupCalls != 2 {
		t.Errorf("lookup called %d times, want 2", env.repo.lookupCalls)
	}
}

func TestProcess_StoreLookupFailsAfterRetry(t *testing.T) {
	env := newTestEnv(t)
	env.extractor.products = []string{"Widget"}
	env.repo.lookupFails = 2
	env.seedJob(t, "job-1", testCSV)

	if _, err := env.uc.Process(context.Background(), pipeline.ProcessInput{JobID: "job-1"}); err != nil {
		t.Fatalf("Process: %v", err)
	}

	job := env.waitTerminal(t, "job-1")
	if job.Status != model.JobStatusFailed {
		t.Fatalf("job status = %s, want FAILED", job.Status)
	}
	if job.ErrorKind != pipeline.ErrorKindStore {
		t.Errorf("error kind = %s, want %s", job.ErrorKind, pipeline.ErrorKindStore)
	}
}

func TestProcess_AgentFailure(t *testing.T) {
	env := newTestEnv(t)
	env.extractor.err = extraction.ErrAgentUnreachable
	env.seedJob(t, "job-1", testCSV)

	if _, err := env.uc.Process(context.Background(), pipeline.ProcessInput{JobID: "job-1"}); err != nil {
		t.Fatalf("Process: %v", err)
	}

	job := env.waitTerminal(t, "job-1")
	if job.Status != model.JobStatusFailed || job.ErrorKind != pipeline.ErrorKindAgent {
		t.Errorf("job = %s/%s, want FAILED/%s", job.Status, job.ErrorKind, pipeline.ErrorKindAgent)
	}
}

func TestProcess_ParseFailure(t *testing.T) {
	env := newTestEnv(t)
	env.extractor.products = []string{"Widget"}
	env.seedJob(t, "job-1", "foo,bar\n1,2\n")

	if _, err := env.uc.Process(context.Background(), pipeline.ProcessInput{JobID: "job-1"}); err != nil {
		t.Fatalf("Process: %v", err)
	}

	job := env.waitTerminal(t, "job-1")
	if job.Status != model.JobStatusFailed || job.ErrorKind != pipeline.ErrorKindParse {
		t.Errorf("job = %s/%s, want FAILED/%s", job.Status, job.ErrorKind, pipeline.ErrorKindParse)
	}
}

func TestProcess_AllRowsMalformedFailsParse(t *testing.T) {
	env := newTestEnv(t)
	env.extractor.products = []string{"Widget"}
	env.seedJob(t, "job-1", "product,sales,amount\nWidget,not-a-number,50.00\nGadget,75,bad-amount\n")

	if _, err := env.uc.Process(context.Background(), pipeline.ProcessInput{JobID: "job-1"}); err != nil {
		t.Fatalf("Process: %v", err)
	}

	job := env.waitTerminal(t, "job-1")
	if job.Status != model.JobStatusFailed || job.ErrorKind != pipeline.ErrorKindParse {
		t.Errorf("job = %s/%s, want FAILED/%s", job.Status, job.ErrorKind, pipeline.ErrorKindParse)
	}
	if !hasMessage(env.logRepo.messages("job-1"), "Processing failed") {
		t.Error("missing failure entry in log")
	}
}

func TestReconcileAbandoned(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.seedJob(t, "job-1", testCSV)
	env.seedJob(t, "job-2", testCSV)
	env.seedJob(t, "job-3", testCSV)
	_ = env.repo.UpdateProcessing(ctx, "job-1")
	_ = env.repo.UpdateProcessing(ctx, "job-2")

	n, err := env.uc.ReconcileAbandoned(ctx)
	if err != nil {
		t.Fatalf("ReconcileAbandoned: %v", err)
	}
	if n != 2 {
		t.Fatalf("reconciled %d jobs, want 2", n)
	}

	for _, id := range []string{"job-1", "job-2"} {
		job, _ := env.repo.GetJobByID(ctx, id)
		if job.Status != model.JobStatusFailed {
			t.Errorf("job %s status = %s, want FAILED", id, job.Status)
		}
		if job.ErrorMessage != abandonedMessage {
			t.Errorf("job %s message = %q, want %q", id, job.ErrorMessage, abandonedMessage)
		}
	}

	job, _ := env.repo.GetJobByID(ctx, "job-3")
	if job.Status != model.JobStatusUploaded {
		t.Errorf("untouched job status = %s, want UPLOADED", job.Status)
	}
}
