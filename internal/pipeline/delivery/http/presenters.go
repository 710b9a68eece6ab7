package http

import (
	"time"

	"salesreport-srv/internal/pipeline"
)

type uploadResp struct {
	JobID    string `json:"job_id"`
	FileName string `json:"file_name"`
	Status   string `json:"status"`
}

type processResp struct {
	JobID   string `json:"job_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type statusResp struct {
	JobID        string  `json:"job_id"`
	FileName     string  `json:"file_name"`
	Status       string  `json:"status"`
	ErrorKind    string  `json:"error_kind,omitempty"`
	ErrorMessage string  `json:"error_message,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
	CompletedAt  *string `json:"completed_at,omitempty"`
}

type reportRowResp struct {
	Product   string `json:"product"`
	Region    string `json:"region"`
	Sales     int    `json:"sales"`
	AmountUSD string `json:"amount_usd"`
	AmountEUR string `json:"amount_eur"`
}

type reportResp struct {
	JobID       string          `json:"job_id"`
	FileName    string          `json:"file_name"`
	Status      string          `json:"status"`
	Rows        []reportRowResp `json:"rows"`
	CompletedAt *string         `json:"completed_at,omitempty"`
}

type logEntryResp struct {
	Timestamp string `json:"ts"`
	Level     string `json:"level"`
	Message   string `json:"message"`
}

type logResp struct {
	Entries []logEntryResp `json:"entries"`
	Next    int            `json:"next"`
}

func (h *handler) newUploadResp(o pipeline.UploadOutput) uploadResp {
	return uploadResp{
		JobID:    o.JobID,
		FileName: o.FileName,
		Status:   string(o.Status),
	}
}

func (h *handler) newProcessResp(o pipeline.ProcessOutput) processResp {
	return processResp{
		JobID:   o.JobID,
		Status:  string(o.Status),
		Message: o.Message,
	}
}

func (h *handler) newStatusResp(o pipeline.StatusOutput) statusResp {
	resp := statusResp{
		JobID:        o.Job.ID,
		FileName:     o.Job.FileName,
		Status:       string(o.Job.Status),
		ErrorKind:    o.Job.ErrorKind,
		ErrorMessage: o.Job.ErrorMessage,
		CreatedAt:    o.Job.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    o.Job.UpdatedAt.Format(time.RFC3339),
	}
	if o.Job.CompletedAt != nil {
		t := o.Job.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &t
	}
	return resp
}

func (h *handler) newReportResp(o pipeline.ReportOutput) reportResp {
	rows := make([]reportRowResp, 0, len(o.Rows))
	for _, row := range o.Rows {
		rows = append(rows, reportRowResp{
			Product:   row.Product,
			Region:    row.Region,
			Sales:     row.Sales,
			AmountUSD: row.AmountUSD.StringFixed(2),
			AmountEUR: row.AmountEUR.StringFixed(2),
		})
	}

	resp := reportResp{
		JobID:    o.Job.ID,
		FileName: o.Job.FileName,
		Status:   string(o.Job.Status),
		Rows:     rows,
	}
	if o.Job.CompletedAt != nil {
		t := o.Job.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &t
	}
	return resp
}

func (h *handler) newLogResp(o pipeline.LogOutput) logResp {
	entries := make([]logEntryResp, 0, len(o.Entries))
	for _, entry := range o.Entries {
		entries = append(entries, logEntryResp{
			Timestamp: entry.Timestamp.Format(time.RFC3339),
			Level:     string(entry.Level),
			Message:   entry.Message,
		})
	}
	return logResp{
		Entries: entries,
		Next:    o.Next,
	}
}
