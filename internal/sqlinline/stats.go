package sqlinline

const QStatsSummary = `--sql 9e635d48-c4b3-4b57-b8c4-c6d543800d96
with user_agg as (
    select count(*) as total_users,
           count(*) filter (where is_creator) as total_creators
    from users
),
tx_agg as (
    select count(*) as total_donations,
           coalesce(sum(montant_brut), 0) as gross_total,
           coalesce(sum(platform_fee), 0) as fee_total,
           count(*) filter (where statut = 'PENDING') as pending_donations,
           count(*) filter (where created_at > now() - interval '24 hours') as donations_24h
    from transactions_jakob
)
select u.total_users, u.total_creators,
       t.total_donations, t.gross_total::text, t.fee_total::text, t.pending_donations, t.donations_24h
from user_agg u, tx_agg t;
`
