package repository

import (
	"context"
)

// DirectoryUserRepo handles platform account rows for the admin console.
type DirectoryUserRepo struct {
	db DBTX
}

func NewDirectoryUserRepo(db DBTX) *DirectoryUserRepo {
	return &DirectoryUserRepo{db: db}
}

func (r *DirectoryUserRepo) Upsert(ctx context.Context, u DirectoryUser) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO directory_users(id, name, email, phone, role_label, status, joined)
	VALUES(?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name, email=excluded.email, phone=excluded.phone,
	 role_label=excluded.role_label, status=excluded.status, joined=excluded.joined,
	 updated_at=CURRENT_TIMESTAMP;
	`, u.ID, u.Name, u.Email, u.Phone, u.RoleLabel, u.Status, u.Joined)
	return err
}

func (r *DirectoryUserRepo) List(ctx context.Context) ([]DirectoryUser, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, email, phone, role_label, status, joined
	FROM directory_users ORDER BY joined, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DirectoryUser
	for rows.Next() {
		var u DirectoryUser
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.RoleLabel, &u.Status, &u.Joined); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *DirectoryUserRepo) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE directory_users SET status = ?, updated_at=CURRENT_TIMESTAMP WHERE id = ?`,
		status, id)
	return err
}
