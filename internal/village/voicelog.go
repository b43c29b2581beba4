package village

import (
	"sort"

	"gramgrid/internal/model"
)

// LogVoiceCommand appends a recognized voice command to the log.
// The log is append-only.
func (r *Repository) LogVoiceCommand(vc model.VoiceCommandLog) (*model.VoiceCommandLog, error) {
	var logs []model.VoiceCommandLog
	if err := r.collections.Read(colVoiceLogs, &logs); err != nil {
		return nil, err
	}

	vc.ID = r.idgen.New()
	vc.CreatedAt = r.now()
	logs = append(logs, vc)

	if err := r.collections.Write(colVoiceLogs, logs); err != nil {
		return nil, err
	}
	return &vc, nil
}

// GetVoiceCommandLogs returns a user's voice commands, newest first,
// truncated to limit when limit > 0.
func (r *Repository) GetVoiceCommandLogs(userID string, limit int) ([]model.VoiceCommandLog, error) {
	var logs []model.VoiceCommandLog
	if err := r.collections.Read(colVoiceLogs, &logs); err != nil {
		return nil, err
	}

	var out []model.VoiceCommandLog
	for _, vc := range logs {
		if vc.UserID == userID {
			out = append(out, vc)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
