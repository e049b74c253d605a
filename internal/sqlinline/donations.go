package sqlinline

// QInsertTransaction relies on the unique index on reference_externe: a retry
// carrying the same reference inserts nothing and returns no row.
const QInsertTransaction = `--sql ddaeb27d-4a3c-427f-9d89-db5bd804e1f4
insert into transactions_jakob
    (user_id, recipient_id, montant_brut, platform_fee, canal, reference_externe, statut, metadata)
values
    ($1::int, $2::int, $3::numeric, $4::numeric, $5::varchar, nullif($6::varchar, ''), $7::varchar, coalesce($8::jsonb, '{}'::jsonb))
on conflict (reference_externe) do nothing
returning id;
`

const QListTransactionsByRecipient = `--sql 6f9c4545-ba05-4556-86ee-21fd84f88184
select id, user_id, recipient_id, montant_brut::text, platform_fee::text, canal,
       coalesce(reference_externe, ''), statut, metadata, created_at
from transactions_jakob
where recipient_id = $1::int
order by created_at desc
limit $2::int;
`
