package services

import (
	"context"
	"testing"

	"teamtask/models"

	"github.com/stretchr/testify/require"
)

func TestCreateAndGetTeam(t *testing.T) {
	db := setupTestDB(t)
	teams := NewTeamService(db)
	ctx := context.Background()

	team, err := teams.CreateTeam(ctx, "Platform", "Infra and tooling")
	require.NoError(t, err)
	require.NotZero(t, team.ID)

	got, err := teams.GetTeam(ctx, team.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Platform", got.Name)

	missing, err := teams.GetTeam(ctx, 9999)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestUpdateTeamPartial(t *testing.T) {
	db := setupTestDB(t)
	teams := NewTeamService(db)
	ctx := context.Background()

	team, err := teams.CreateTeam(ctx, "Platform", "Infra")
	require.NoError(t, err)

	desc := "Infra and tooling"
	updated, err := teams.UpdateTeam(ctx, team.ID, TeamUpdate{Description: &desc})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, "Platform", updated.Name) // untouched
	require.Equal(t, desc, updated.Description)

	name := "Ghost"
	none, err := teams.UpdateTeam(ctx, 9999, TeamUpdate{Name: &name})
	require.NoError(t, err)
	require.Nil(t, none)
}

func TestDeleteTeamCascadesMemberships(t *testing.T) {
	db := setupTestDB(t)
	teams := NewTeamService(db)
	ctx := context.Background()

	team := createTestTeam(t, db, "Platform")
	user := createTestUser(t, db, "alice")

	_, err := teams.AddTeamMember(ctx, team.ID, user.ID, models.RoleMember)
	require.NoError(t, err)
	require.EqualValues(t, 1, countRows(t, db, &models.TeamMember{}))

	deleted, err := teams.DeleteTeam(ctx, team.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	require.EqualValues(t, 0, countRows(t, db, &models.Team{}))
	require.EqualValues(t, 0, countRows(t, db, &models.TeamMember{}))

	deleted, err = teams.DeleteTeam(ctx, team.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestAddTeamMemberIdempotent(t *testing.T) {
	db := setupTestDB(t)
	teams := NewTeamService(db)
	ctx := context.Background()

	team := createTestTeam(t, db, "Platform")
	user := createTestUser(t, db, "alice")

	first, err := teams.AddTeamMember(ctx, team.ID, user.ID, models.RoleManager)
	require.NoError(t, err)

	// Re-adding returns the existing row unchanged, role included
	second, err := teams.AddTeamMember(ctx, team.ID, user.ID, models.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, models.RoleManager, second.Role)

	members, err := teams.GetTeamMembers(ctx, team.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	require.NotNil(t, members[0].User)
	require.Equal(t, "alice", members[0].User.Username)
}

func TestRemoveTeamMember(t *testing.T) {
	db := setupTestDB(t)
	teams := NewTeamService(db)
	ctx := context.Background()

	team := createTestTeam(t, db, "Platform")
	user := createTestUser(t, db, "alice")

	removed, err := teams.RemoveTeamMember(ctx, team.ID, user.ID)
	require.NoError(t, err)
	require.False(t, removed)

	_, err = teams.AddTeamMember(ctx, team.ID, user.ID, models.RoleMember)
	require.NoError(t, err)

	removed, err = teams.RemoveTeamMember(ctx, team.ID, user.ID)
	require.NoError(t, err)
	require.True(t, removed)
	require.EqualValues(t, 0, countRows(t, db, &models.TeamMember{}))
}

func TestUpdateTeamMemberRole(t *testing.T) {
	db := setupTestDB(t)
	teams := NewTeamService(db)
	ctx := context.Background()

	team := createTestTeam(t, db, "Platform")
	user := createTestUser(t, db, "alice")

	none, err := teams.UpdateTeamMemberRole(ctx, team.ID, user.ID, models.RoleAdmin)
	require.NoError(t, err)
	require.Nil(t, none)

	_, err = teams.AddTeamMember(ctx, team.ID, user.ID, models.RoleMember)
	require.NoError(t, err)

	member, err := teams.UpdateTeamMemberRole(ctx, team.ID, user.ID, models.RoleAdmin)
	require.NoError(t, err)
	require.NotNil(t, member)
	require.Equal(t, models.RoleAdmin, member.Role)
}

func TestGetAllTeams(t *testing.T) {
	db := setupTestDB(t)
	teams := NewTeamService(db)
	ctx := context.Background()

	createTestTeam(t, db, "Platform")
	createTestTeam(t, db, "Design")

	all, err := teams.GetAllTeams(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "Platform", all[0].Name)
	require.Equal(t, "Design", all[1].Name)
}
