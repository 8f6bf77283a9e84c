package game

type Phase string

const (
	PhaseIdle         Phase = "IDLE"
	PhaseLoadingFirst Phase = "LOADING_FIRST"
	PhaseReady        Phase = "READY"
	PhaseAnswered     Phase = "ANSWERED"
	PhaseLoadingNext  Phase = "LOADING_NEXT"
	PhaseError        Phase = "ERROR"
)
