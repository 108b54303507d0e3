package inbound

import (
	"context"
	"net/http"
)

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Generate(ctx context.Context, _ *http.Request) (any, error) {
	result, err := h.uc.Generate(ctx)
	if err != nil {
		return nil, err
	}

	return GenerateResponse{
		RunID:       result.RunID,
		ReportID:    result.ReportID,
		Created:     result.Created,
		InputFileID: result.InputFileID,
		Summary:     toHTTPSummary(result.Stats),
	}, nil
}

func (h *HTTPEndpoint) Summary(ctx context.Context, _ *http.Request) (any, error) {
	result, err := h.uc.Summary(ctx)
	if err != nil {
		return nil, err
	}

	return SummaryResponse{
		InputFileID: result.InputFile.ID,
		InputName:   result.InputFile.Name,
		Summary:     toHTTPSummary(result.Stats),
	}, nil
}

func (h *HTTPEndpoint) Preview(ctx context.Context, _ *http.Request) (any, error) {
	result, err := h.uc.Preview(ctx)
	if err != nil {
		return nil, err
	}

	return PreviewResponse{name: result.FileName, data: result.Report.PDF}, nil
}
