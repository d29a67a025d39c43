package entities

// Metadata this struct contains extra information about the data that leaves the explorer
// + SessionID: analysis session that produced the data
// + City: city which belongs the data
// + Type: this field helps consumers to recognize what type of data is
// + Stage: stage were the Metadata was constructed
type Metadata struct {
	SessionID string `json:"session_id"`
	City      string `json:"city"`
	Type      string `json:"type"`
	Stage     string `json:"stage"`
}

func NewMetadata(sessionID string, city string, dataType string, stage string) Metadata {
	return Metadata{
		SessionID: sessionID,
		City:      city,
		Type:      dataType,
		Stage:     stage,
	}
}

func (m Metadata) GetType() string {
	return m.Type
}

func (m Metadata) GetCity() string {
	return m.City
}

func (m Metadata) GetStage() string {
	return m.Stage
}

func (m Metadata) GetSessionID() string {
	return m.SessionID
}
