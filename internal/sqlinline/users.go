package sqlinline

const QInsertUser = `--sql 9b29959a-e442-4b89-ae63-72161ee9a065
insert into users (username, telephone, active)
values ($1::varchar, $2::varchar, true)
returning id;
`

const QExistsUserByUsernameOrPhone = `--sql fb257bbf-ca1b-48ed-91df-a197e7dd1765
select exists (
    select 1
    from users
    where telephone = $1::varchar or username = $2::varchar
);
`

const QSelectUserByID = `--sql 935a1171-673b-41f6-bd94-8014caae0a2d
select id, username, telephone, coalesce(prenom, ''), coalesce(nom, ''), is_creator, active, created_at
from users
where id = $1::int
limit 1;
`

const QSelectCreatorByID = `--sql 5f0fe468-1cfb-4b0d-b580-cb1e0c384b5a
select id, username, telephone, coalesce(prenom, ''), coalesce(nom, ''), is_creator, active, created_at
from users
where id = $1::int and is_creator = true
limit 1;
`
