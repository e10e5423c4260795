package event

const decisionEvents = "application_decision_events"

// DecisionEvent 管理员审核后发出，通知下游刷新申请人视角的状态
type DecisionEvent struct {
	Uid           int64  `json:"uid"`
	ApplicationId int64  `json:"applicationId"`
	SN            string `json:"sn"`
	Status        string `json:"status"`
	DecidedAt     int64  `json:"decidedAt"`
}
