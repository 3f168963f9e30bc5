package model

// RoleLoad is the aggregate workload of one named role across a set of
// processes. A role appearing in both As-Is and To-Be of the same process is
// counted once in ProcessCount but twice in TotalLoad.
type RoleLoad struct {
	RoleName     string
	AsIsCount    int
	ToBeCount    int
	TotalLoad    int
	ProcessCount int
}
